package shader

// BlendWGSL composites an overlay texture onto a base texture. The mode
// index selects the blend function; opacity and alpha match blend.Uniforms.
const BlendWGSL = `
struct Params {
    mode: u32,
    opacity: f32,
    alpha: f32,
    _pad: f32,
}

@group(0) @binding(0) var base_tex: texture_2d<f32>;
@group(0) @binding(1) var overlay_tex: texture_2d<f32>;
@group(0) @binding(2) var samp: sampler;
@group(0) @binding(3) var<uniform> params: Params;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> VertexOutput {
    let x = f32((idx << 1u) & 2u);
    let y = f32(idx & 2u);
    var out: VertexOutput;
    out.position = vec4<f32>(x * 2.0 - 1.0, 1.0 - y * 2.0, 0.0, 1.0);
    out.uv = vec2<f32>(x, y);
    return out;
}

fn unpremul(c: vec4<f32>) -> vec3<f32> {
    if c.a <= 0.0 {
        return vec3<f32>(0.0);
    }
    return c.rgb / c.a;
}

fn blend_channel(mode: u32, s: vec3<f32>, d: vec3<f32>) -> vec3<f32> {
    switch mode {
        case 1u: { return s * d; }
        case 2u: { return s + d - s * d; }
        case 4u: { return min(s, d); }
        case 5u: { return max(s, d); }
        case 10u: { return abs(d - s); }
        case 11u: { return s + d - 2.0 * s * d; }
        case 13u: { return max(d - s, vec3<f32>(0.0)); }
        case 14u: { return (s + d) * 0.5; }
        default: { return s; }
    }
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let base = textureSample(base_tex, samp, in.uv);
    let overlay = textureSample(overlay_tex, samp, in.uv) * clamp(params.opacity, 0.0, 1.0);

    let b = blend_channel(params.mode, unpremul(overlay), unpremul(base));
    let rgb = base.rgb * (1.0 - overlay.a) + overlay.rgb * (1.0 - base.a) + overlay.a * base.a * b;
    let a = overlay.a + base.a * (1.0 - overlay.a);

    return mix(base, vec4<f32>(rgb, a), clamp(params.alpha, 0.0, 1.0));
}
`

// FilterWGSL samples a source texture through a UV remap. Mode 0 is
// pixelate with params.x as the cell size in pixels; mode 1 mirrors across
// the vertical axis.
const FilterWGSL = `
struct Params {
    mode: u32,
    size: vec2<f32>,
    amount: f32,
}

@group(0) @binding(0) var src_tex: texture_2d<f32>;
@group(0) @binding(1) var samp: sampler;
@group(0) @binding(2) var<uniform> params: Params;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) idx: u32) -> VertexOutput {
    let x = f32((idx << 1u) & 2u);
    let y = f32(idx & 2u);
    var out: VertexOutput;
    out.position = vec4<f32>(x * 2.0 - 1.0, 1.0 - y * 2.0, 0.0, 1.0);
    out.uv = vec2<f32>(x, y);
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    var uv = in.uv;
    if params.mode == 0u {
        let cell = max(params.amount, 1.0) / params.size;
        uv = (floor(uv / cell) + 0.5) * cell;
    } else if uv.x > 0.5 {
        uv.x = 1.0 - uv.x;
    }
    return textureSample(src_tex, samp, uv);
}
`
