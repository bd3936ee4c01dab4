package domain

import (
	"maps"
	"slices"
	"testing"
)

func TestBundles_SymmetricTokenNames(t *testing.T) {
	light, dark := LightBundle(), DarkBundle()

	lightRoles := slices.Sorted(maps.Keys(light.Colors.Roles()))
	darkRoles := slices.Sorted(maps.Keys(dark.Colors.Roles()))
	if !slices.Equal(lightRoles, darkRoles) {
		t.Errorf("color roles differ:\nlight: %v\ndark:  %v", lightRoles, darkRoles)
	}

	lightShadows := slices.Sorted(maps.Keys(light.Shadows.Levels()))
	darkShadows := slices.Sorted(maps.Keys(dark.Shadows.Levels()))
	if !slices.Equal(lightShadows, darkShadows) {
		t.Errorf("shadow levels differ:\nlight: %v\ndark:  %v", lightShadows, darkShadows)
	}

	for role, color := range light.Colors.Roles() {
		if color == "" {
			t.Errorf("light role %s is empty", role)
		}
	}
	for role, color := range dark.Colors.Roles() {
		if color == "" {
			t.Errorf("dark role %s is empty", role)
		}
	}
}

func TestBundleFor(t *testing.T) {
	if got := BundleFor(ModeDark); got.Mode != ModeDark || got.Colors.Surface.Base != "#151212" {
		t.Errorf("BundleFor(dark) returned %v bundle with base %s", got.Mode, got.Colors.Surface.Base)
	}
	if got := BundleFor(ModeLight); got.Mode != ModeLight || got.Colors.Surface.Base != "#FFF5EB" {
		t.Errorf("BundleFor(light) returned %v bundle with base %s", got.Mode, got.Colors.Surface.Base)
	}
	if got := BundleFor(Mode(42)); got.Mode != ModeLight {
		t.Errorf("unknown mode should fall back to light, got %v", got.Mode)
	}
}

func TestBundles_Immutable(t *testing.T) {
	first := LightBundle()
	first.Colors.Heart.Pink = "#000000"
	first.Layout.IconSizes[0] = 999

	second := LightBundle()
	if second.Colors.Heart.Pink != "#FF6B8A" {
		t.Errorf("expected immutable palette, got %q", second.Colors.Heart.Pink)
	}
	if second.Layout.IconSizes[0] != 16 {
		t.Errorf("expected immutable icon sizes, got %d", second.Layout.IconSizes[0])
	}
}

func TestDarkShadows_KeepGeometry(t *testing.T) {
	light, dark := LightBundle().Shadows.Levels(), DarkBundle().Shadows.Levels()

	for name, l := range light {
		d := dark[name]
		if l.OffsetY != d.OffsetY || l.Blur != d.Blur || l.Elevation != d.Elevation {
			t.Errorf("shadow %s geometry changed between modes: %+v vs %+v", name, l, d)
		}
	}
	if dark["md"].Color != "#000" || dark["md"].Opacity != 0.3 {
		t.Errorf("dark md shadow = %+v", dark["md"])
	}
	if dark["none"] != light["none"] {
		t.Errorf("none shadow should be identical, got %+v vs %+v", light["none"], dark["none"])
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"light", ModeLight, false},
		{"Dark", ModeDark, false},
		{" dark ", ModeDark, false},
		{"auto", ModeLight, true},
		{"", ModeLight, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, expected %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMode_Opposite(t *testing.T) {
	if ModeLight.Opposite() != ModeDark || ModeDark.Opposite() != ModeLight {
		t.Error("Opposite should swap light and dark")
	}
}
