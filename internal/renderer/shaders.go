package renderer

// The default shaders only use variable names from the default semantic
// mappings, so they link against semantics.SharedDefault without any
// application mappings.

var vertexShaderSource = `#version 330 core

in vec4 a_position;
in vec3 a_normal;
in vec2 a_texCoord0;

uniform mat4 u_modelMatrix;
uniform mat4 u_modelViewProjMatrix;
uniform mat3 u_normalMatrix;
uniform mat4 u_viewMatrix;
uniform bool u_hasNormal;
uniform bool u_shouldNormalizeNormal;

out vec3 v_eyePosition;
out vec3 v_eyeNormal;
out vec2 v_texCoord;

void main() {
    mat4 modelView = u_viewMatrix * u_modelMatrix;
    v_eyePosition = vec3(modelView * a_position);
    vec3 n = u_hasNormal ? a_normal : vec3(0.0, 0.0, 1.0);
    v_eyeNormal = u_normalMatrix * n;
    if (u_shouldNormalizeNormal) {
        v_eyeNormal = normalize(v_eyeNormal);
    }
    v_texCoord = a_texCoord0;
    gl_Position = u_modelViewProjMatrix * a_position;
}
`

var fragmentShaderSource = `#version 330 core

#define MAX_LIGHTS 4

in vec3 v_eyePosition;
in vec3 v_eyeNormal;
in vec2 v_texCoord;

uniform mat4 u_viewMatrix;

uniform vec4 u_color;
uniform vec4 u_materialAmbient;
uniform vec4 u_materialDiffuse;
uniform vec4 u_materialSpecular;
uniform vec4 u_materialEmission;
uniform float u_materialShininess;
uniform float u_minimumDrawnAlpha;

uniform bool u_isUsingLighting;
uniform vec4 u_sceneLightAmbient;

uniform bool u_lightIsEnabled[MAX_LIGHTS];
uniform vec4 u_lightPosition[MAX_LIGHTS];
uniform vec4 u_lightAmbient[MAX_LIGHTS];
uniform vec4 u_lightDiffuse[MAX_LIGHTS];
uniform vec4 u_lightSpecular[MAX_LIGHTS];
uniform vec3 u_lightAttenuation[MAX_LIGHTS];

uniform int u_textureCount;
uniform sampler2D s_texture0;

out vec4 fragColor;

vec4 illuminate(vec3 n, vec3 eyeDir) {
    vec4 color = u_materialEmission + u_materialAmbient * u_sceneLightAmbient;
    for (int i = 0; i < MAX_LIGHTS; i++) {
        if (!u_lightIsEnabled[i]) {
            continue;
        }
        vec4 lp = u_viewMatrix * u_lightPosition[i];
        vec3 toLight;
        float attenuation = 1.0;
        if (lp.w == 0.0) {
            toLight = normalize(lp.xyz);
        } else {
            vec3 d = lp.xyz - v_eyePosition;
            float dist = length(d);
            toLight = d / dist;
            vec3 k = u_lightAttenuation[i];
            attenuation = 1.0 / (k.x + k.y * dist + k.z * dist * dist);
        }
        float diff = max(dot(n, toLight), 0.0);
        float spec = 0.0;
        if (diff > 0.0) {
            vec3 halfway = normalize(toLight + eyeDir);
            spec = pow(max(dot(n, halfway), 0.0), max(u_materialShininess, 1.0));
        }
        color += attenuation * (u_lightAmbient[i] * u_materialAmbient
            + diff * u_lightDiffuse[i] * u_materialDiffuse
            + spec * u_lightSpecular[i] * u_materialSpecular);
    }
    color.a = u_materialDiffuse.a;
    return color;
}

void main() {
    vec4 color = u_color;
    if (u_isUsingLighting) {
        color = illuminate(normalize(v_eyeNormal), normalize(-v_eyePosition));
    }
    if (u_textureCount > 0) {
        color *= texture(s_texture0, v_texCoord);
    }
    if (color.a < u_minimumDrawnAlpha) {
        discard;
    }
    fragColor = color;
}
`

// Point sprite program, exercising the point and light-struct mappings.
var pointVertexShaderSource = `#version 330 core

in vec4 a_position;

uniform mat4 u_modelViewMatrix;
uniform mat4 u_projMatrix;
uniform float u_pointSize;
uniform vec3 u_pointSizeAttenuation;
uniform float u_pointSizeMinimum;
uniform float u_pointSizeMaximum;

void main() {
    vec4 eye = u_modelViewMatrix * a_position;
    float d = length(eye.xyz);
    vec3 k = u_pointSizeAttenuation;
    float size = u_pointSize / sqrt(k.x + k.y * d + k.z * d * d);
    gl_PointSize = clamp(size, u_pointSizeMinimum, u_pointSizeMaximum);
    gl_Position = u_projMatrix * eye;
}
`

var pointFragmentShaderSource = `#version 330 core

struct Light {
    vec4 diffuse;
    bool isEnabled;
};

uniform Light u_lights[1];
uniform vec4 u_color;
uniform bool u_isPointSpritesEnabled;

out vec4 fragColor;

void main() {
    vec4 color = u_color;
    if (u_lights[0].isEnabled) {
        color *= u_lights[0].diffuse;
    }
    if (u_isPointSpritesEnabled && length(gl_PointCoord - vec2(0.5)) > 0.5) {
        discard;
    }
    fragColor = color;
}
`

// InitShader returns the lit default program, not yet linked.
func InitShader() *Program {
	return NewProgram(vertexShaderSource, fragmentShaderSource)
}

// InitPointShader returns the point sprite program, not yet linked.
func InitPointShader() *Program {
	return NewProgram(pointVertexShaderSource, pointFragmentShaderSource)
}
