package render

// Lit shader: per-fragment Phong with one point light. raylib fills matModel, matView, matProjection
// and colDiffuse (the object color); the rest is set by Renderer.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform mat4 normalModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(normalModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightPosition;
uniform vec3 ambientColor;
uniform vec3 diffuseColor;
uniform vec3 specularColor;
uniform float specularPower;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightPosition - fragPosition);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 H = normalize(L + V);
  float spec = NdotL > 0.0 ? pow(max(dot(N, H), 0.0), specularPower) : 0.0;
  vec3 color = colDiffuse.rgb * (ambientColor + diffuseColor * NdotL) + specularColor * spec;
  finalColor = vec4(color, colDiffuse.a);
}
`
)
