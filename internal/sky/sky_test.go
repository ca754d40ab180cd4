package sky

import (
	"math"
	"testing"
)

func TestTimeOfDayWraps(t *testing.T) {
	c := NewCycle()
	c.Advance(DayLength * 3.25)

	tod := c.TimeOfDay()
	if tod < 0 || tod >= 1 {
		t.Fatalf("time of day %v out of [0,1)", tod)
	}
}

func TestAdvanceIgnoresBadDeltas(t *testing.T) {
	c := NewCycle()
	before := c.TimeOfDay()

	c.Advance(-5)
	c.Advance(math.NaN())

	if c.TimeOfDay() != before {
		t.Fatalf("time of day moved on invalid delta: %v -> %v", before, c.TimeOfDay())
	}
}

func TestDaylightRangeAndPeaks(t *testing.T) {
	c := &Cycle{}
	for i := 0; i < 1000; i++ {
		d := c.Daylight()
		if d < 0 || d > 1 {
			t.Fatalf("daylight %v out of [0,1] at t=%v", d, c.TimeOfDay())
		}
		c.Advance(DayLength / 1000)
	}

	noon := &Cycle{elapsed: DayLength * 0.5}
	midnight := &Cycle{}
	if noon.Daylight() <= midnight.Daylight() {
		t.Fatalf("noon daylight %v not above midnight %v", noon.Daylight(), midnight.Daylight())
	}
	if got := noon.Daylight(); got != 1 {
		t.Fatalf("noon daylight = %v, want 1", got)
	}
}

func TestSunDirectionIsUnit(t *testing.T) {
	c := &Cycle{}
	for i := 0; i < 24; i++ {
		dir := c.SunDirection()
		if math.Abs(float64(dir.Len())-1) > 1e-5 {
			t.Fatalf("sun direction %v not normalized at t=%v", dir, c.TimeOfDay())
		}
		c.Advance(DayLength / 24)
	}
}

func TestSkyColorTracksDaylight(t *testing.T) {
	noon := &Cycle{elapsed: DayLength * 0.5}
	midnight := &Cycle{}

	day := noon.SkyColor()
	night := midnight.SkyColor()
	if day[2] <= night[2] {
		t.Fatalf("noon sky %v not brighter than midnight %v", day, night)
	}

	tint := midnight.WaterTint()
	for i := 0; i < 3; i++ {
		if tint[i] < 0 || tint[i] > 1 {
			t.Fatalf("water tint channel %d = %v out of range", i, tint[i])
		}
	}
}
