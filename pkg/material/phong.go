package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Phong implements the ambient + diffuse + specular illumination model
type Phong struct {
	Color      core.Color // Base color, used when Pattern is nil
	Pattern    Pattern    // Optional stencil overriding Color
	Ambient    float64    // Fraction of light reflected regardless of angle
	Diffuse    float64    // Fraction of light reflected from matte surfaces
	Specular   float64    // Brightness of the specular highlight
	Shininess  float64    // Size of the specular highlight; larger is smaller and tighter
	Reflective float64    // 0 is matte, 1 is a perfect mirror
}

// NewPhong creates a Phong material with default parameters
func NewPhong() *Phong {
	return &Phong{
		Color:      core.White,
		Ambient:    0.1,
		Diffuse:    0.9,
		Specular:   0.9,
		Shininess:  200,
		Reflective: 0,
	}
}

// NewColoredPhong creates a default Phong material with the given base color
func NewColoredPhong(color core.Color) *Phong {
	p := NewPhong()
	p.Color = color
	return p
}

// Reflectiveness implements the Material interface
func (p *Phong) Reflectiveness() float64 {
	return p.Reflective
}

func (p *Phong) isMaterial() {}

// Lighting implements the Material interface
func (p *Phong) Lighting(object Object, light lights.PointLight, position, eyev, normalv core.Tuple, inShadow bool) core.Color {
	color := p.Color
	if p.Pattern != nil {
		color = ColorAt(p.Pattern, object, position)
	}

	// Combine the surface color with the light's color/intensity
	effectiveColor := color.MultiplyColor(light.Intensity)
	ambient := effectiveColor.Multiply(p.Ambient)
	if inShadow {
		return ambient
	}

	lightv := light.Position.Subtract(position).Normalize()

	// A negative cosine means the light is on the other side of the surface
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(p.Diffuse * lightDotNormal)

	// A negative cosine means the light reflects away from the eye
	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, p.Shininess)
	specular := light.Intensity.Multiply(p.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}
