package scene

import (
	"testing"

	"sprite-server/internal/domain"
)

func sampleDescriptor() Descriptor {
	return Descriptor{
		View: domain.ViewState{
			Pos:    domain.Position{X: 5, Y: 7},
			Facing: domain.East,
		},
		Entities: []EntityRef{
			{ID: "b", Type: domain.EntityTypeMonster, Name: "Гоблин", Pos: domain.Position{X: 6, Y: 7}},
			{ID: "a", Type: domain.EntityTypeItem, Name: "Меч", Pos: domain.Position{X: 5, Y: 8}},
		},
		Lighting:  domain.LightingDim,
		TimeOfDay: domain.TimeOfDayNight,
		Narrative: "Темно и сыро.",
	}
}

func TestGenerateHashStable(t *testing.T) {
	d := sampleDescriptor()
	if GenerateHash(d) != GenerateHash(d) {
		t.Error("Expected identical descriptors to hash equally")
	}
}

func TestGenerateHashEntityOrderIndependent(t *testing.T) {
	d1 := sampleDescriptor()

	d2 := sampleDescriptor()
	d2.Entities[0], d2.Entities[1] = d2.Entities[1], d2.Entities[0]

	if GenerateHash(d1) != GenerateHash(d2) {
		t.Error("Expected hash to ignore entity enumeration order")
	}
}

func TestGenerateHashSensitivity(t *testing.T) {
	base := GenerateHash(sampleDescriptor())

	mutations := map[string]func(*Descriptor){
		"position":        func(d *Descriptor) { d.View.Pos.X++ },
		"facing":          func(d *Descriptor) { d.View.Facing = domain.South },
		"lighting":        func(d *Descriptor) { d.Lighting = domain.LightingDark },
		"time of day":     func(d *Descriptor) { d.TimeOfDay = domain.TimeOfDayDay },
		"entity position": func(d *Descriptor) { d.Entities[0].Pos.Y++ },
		"entity removed":  func(d *Descriptor) { d.Entities = d.Entities[:1] },
		"entity added": func(d *Descriptor) {
			d.Entities = append(d.Entities, EntityRef{ID: "c", Type: domain.EntityTypeNPC, Name: "Торговец"})
		},
	}

	for name, mutate := range mutations {
		d := sampleDescriptor()
		mutate(&d)
		if GenerateHash(d) == base {
			t.Errorf("Expected %s change to alter the hash", name)
		}
	}
}

func TestGenerateHashIgnoresNarrative(t *testing.T) {
	d1 := sampleDescriptor()
	d2 := sampleDescriptor()
	d2.Narrative = "Где-то капает вода."

	// Нарратив - контекст рендера, не содержимое сцены
	if GenerateHash(d1) != GenerateHash(d2) {
		t.Error("Expected narrative to be excluded from the hash")
	}
}

func TestGenerateHashEmptyDescriptor(t *testing.T) {
	h := GenerateHash(Descriptor{})
	if len(h) != 64 {
		t.Errorf("Expected sha256 hex digest, got %q", h)
	}
}
