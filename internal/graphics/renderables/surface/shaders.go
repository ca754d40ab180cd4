package surface

// The water vertex shader carries the same simplex noise as the CPU height
// field in internal/wave: identical skew constants, the same
// ((i*1597 + j*6971) mod 289) mod 16 gradient hash, the same 16-entry
// gradient table and the 38.0 normalization. GLSL mod() is floored, so
// negative lattice coordinates hash the same way as the Go code. Any change
// here must be mirrored in internal/wave/noise.go or buoyancy sampling will
// diverge from the rendered surface.
const waterVertSource = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 view;
uniform mat4 projection;
uniform float uTime;
uniform float uAmplitude;
uniform float uFrequency;
uniform float uSpeed;
uniform float uPersistence;
uniform float uLacunarity;
uniform int uOctaves;

out vec3 vWorldPos;
out vec3 vNormal;
out float vHeight;

const float F2 = 0.36602540378443865;
const float G2 = 0.21132486540518713;

const vec2 kGrad[16] = vec2[16](
    vec2(1.0, 1.0), vec2(-1.0, 1.0), vec2(1.0, -1.0), vec2(-1.0, -1.0),
    vec2(1.0, 0.0), vec2(-1.0, 0.0), vec2(0.0, 1.0), vec2(0.0, -1.0),
    vec2(1.0, 1.0), vec2(-1.0, 1.0), vec2(1.0, -1.0), vec2(-1.0, -1.0),
    vec2(1.0, 0.0), vec2(-1.0, 0.0), vec2(0.0, 1.0), vec2(0.0, -1.0)
);

vec2 gradAt(float i, float j) {
    float h = mod(mod(i * 1597.0 + j * 6971.0, 289.0), 16.0);
    return kGrad[int(h)];
}

float corner(vec2 d, vec2 g) {
    float t = 0.5 - dot(d, d);
    if (t < 0.0) return 0.0;
    t *= t;
    return t * t * dot(g, d);
}

float snoise(vec2 p) {
    float s = (p.x + p.y) * F2;
    float i = floor(p.x + s);
    float j = floor(p.y + s);
    float t = (i + j) * G2;
    vec2 d0 = vec2(p.x - (i - t), p.y - (j - t));
    float i1 = d0.x > d0.y ? 1.0 : 0.0;
    float j1 = 1.0 - i1;
    vec2 d1 = d0 - vec2(i1, j1) + G2;
    vec2 d2 = d0 - 1.0 + 2.0 * G2;
    float n = corner(d0, gradAt(i, j))
            + corner(d1, gradAt(i + i1, j + j1))
            + corner(d2, gradAt(i + 1.0, j + 1.0));
    return 38.0 * n;
}

float waveHeight(vec2 xz) {
    float sum = 0.0;
    float amp = 1.0;
    float freq = uFrequency;
    float shift = uTime * uSpeed;
    for (int k = 0; k < uOctaves; ++k) {
        sum += snoise(xz * freq + vec2(shift)) * amp;
        amp *= uPersistence;
        freq *= uLacunarity;
    }
    return sum * uAmplitude;
}

void main() {
    vec3 pos = aPos;
    pos.y = waveHeight(aPos.xz);

    float eps = 0.35;
    float hx = waveHeight(aPos.xz + vec2(eps, 0.0));
    float hz = waveHeight(aPos.xz + vec2(0.0, eps));
    vNormal = normalize(vec3(pos.y - hx, eps, pos.y - hz));

    vWorldPos = pos;
    vHeight = pos.y;
    gl_Position = projection * view * vec4(pos, 1.0);
}
`

const waterFragSource = `#version 410 core
in vec3 vWorldPos;
in vec3 vNormal;
in float vHeight;
out vec4 FragColor;

uniform vec3 uEyePos;
uniform vec3 uSunDir;
uniform vec3 uSkyColor;
uniform vec3 uTint;
uniform float uAmplitude;

const vec3 kDeepColor = vec3(0.02, 0.13, 0.25);
const vec3 kShallowColor = vec3(0.10, 0.35, 0.45);
const vec3 kCrestColor = vec3(0.80, 0.90, 0.95);

void main() {
    vec3 n = normalize(vNormal);
    vec3 sunDir = normalize(uSunDir);
    vec3 viewDir = normalize(uEyePos - vWorldPos);

    // Height-banded base color: troughs stay deep, crests whiten.
    float bound = max(uAmplitude * 1.8, 1e-4);
    float level = clamp(vHeight / bound * 0.5 + 0.5, 0.0, 1.0);
    vec3 base = mix(kDeepColor, kShallowColor, level);
    base = mix(base, kCrestColor, smoothstep(0.82, 1.0, level));

    float diffuse = max(dot(n, sunDir), 0.0);
    vec3 color = base * (0.35 + 0.65 * diffuse);

    float fresnel = pow(1.0 - max(dot(n, viewDir), 0.0), 3.0);
    color = mix(color, uSkyColor, 0.35 * fresnel);

    vec3 halfway = normalize(sunDir + viewDir);
    float spec = pow(max(dot(n, halfway), 0.0), 64.0);
    color += vec3(0.5) * spec * diffuse;

    FragColor = vec4(color * uTint, 0.94);
}
`

const floorVertSource = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 view;
uniform mat4 projection;

out vec3 vWorldPos;
out vec3 vNormal;

void main() {
    vWorldPos = aPos;
    vNormal = aNormal;
    gl_Position = projection * view * vec4(aPos, 1.0);
}
`

const floorFragSource = `#version 410 core
in vec3 vWorldPos;
in vec3 vNormal;
out vec4 FragColor;

uniform vec3 uSunDir;
uniform vec3 uEyePos;
uniform vec3 uTint;

const vec3 kSandColor = vec3(0.55, 0.50, 0.38);
const vec3 kDepthColor = vec3(0.03, 0.10, 0.16);

void main() {
    vec3 n = normalize(vNormal);
    float diffuse = max(dot(n, normalize(uSunDir)), 0.0);
    vec3 color = kSandColor * (0.25 + 0.75 * diffuse);

    // Light attenuates with water depth and viewing distance.
    float depthFade = clamp(-vWorldPos.y * 0.08, 0.0, 1.0);
    float distFade = clamp(length(uEyePos - vWorldPos) * 0.004, 0.0, 1.0);
    color = mix(color, kDepthColor, max(depthFade, distFade));

    FragColor = vec4(color * uTint, 1.0);
}
`
