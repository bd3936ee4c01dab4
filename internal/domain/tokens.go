package domain

// PrimaryColors is the romance accent palette
type PrimaryColors struct {
	Rose      string
	RoseLight string
	RoseDark  string
	Blush     string
	Peach     string
}

// SurfaceColors are the background surfaces (cream tones in light mode)
type SurfaceColors struct {
	Light string
	Base  string
	Dark  string
}

// AccentColors are soft secondary tints
type AccentColors struct {
	Lavender string
	Mint     string
	Sky      string
	Honey    string
	Coral    string
}

// HeartColors are used for love index and hearts
type HeartColors struct {
	Pink    string
	Red     string
	SoftRed string
}

// TextColors are the text tiers
type TextColors struct {
	Primary   string
	Secondary string
	Tertiary  string
	Light     string
	Inverse   string
}

// UIColors holds chrome and semantic status colors
type UIColors struct {
	Border  string
	Divider string
	Shadow  string
	Overlay string
	Success string
	Warning string
	Error   string
}

// MoodColors maps the six base mood categories to colors
type MoodColors struct {
	Joyful    string
	Loving    string
	Peaceful  string
	Grateful  string
	Nostalgic string
	Cozy      string
}

// Gradient is a three-stop background gradient
type Gradient [3]string

// Gradients are the named background gradients
type Gradients struct {
	Sunrise Gradient
	Sunset  Gradient
	Warmth  Gradient
	Love    Gradient
}

// Palette is the full color palette of one appearance mode
type Palette struct {
	Primary   PrimaryColors
	Surface   SurfaceColors
	Accent    AccentColors
	Heart     HeartColors
	Text      TextColors
	UI        UIColors
	Mood      MoodColors
	Gradients Gradients
	White     string
}

// Roles flattens the palette into "group.name" keys
func (p Palette) Roles() map[string]string {
	return map[string]string{
		"primary.rose":      p.Primary.Rose,
		"primary.roseLight": p.Primary.RoseLight,
		"primary.roseDark":  p.Primary.RoseDark,
		"primary.blush":     p.Primary.Blush,
		"primary.peach":     p.Primary.Peach,

		"surface.light": p.Surface.Light,
		"surface.base":  p.Surface.Base,
		"surface.dark":  p.Surface.Dark,

		"accent.lavender": p.Accent.Lavender,
		"accent.mint":     p.Accent.Mint,
		"accent.sky":      p.Accent.Sky,
		"accent.honey":    p.Accent.Honey,
		"accent.coral":    p.Accent.Coral,

		"heart.pink":    p.Heart.Pink,
		"heart.red":     p.Heart.Red,
		"heart.softRed": p.Heart.SoftRed,

		"text.primary":   p.Text.Primary,
		"text.secondary": p.Text.Secondary,
		"text.tertiary":  p.Text.Tertiary,
		"text.light":     p.Text.Light,
		"text.inverse":   p.Text.Inverse,

		"ui.border":  p.UI.Border,
		"ui.divider": p.UI.Divider,
		"ui.shadow":  p.UI.Shadow,
		"ui.overlay": p.UI.Overlay,
		"ui.success": p.UI.Success,
		"ui.warning": p.UI.Warning,
		"ui.error":   p.UI.Error,

		"mood.joyful":    p.Mood.Joyful,
		"mood.loving":    p.Mood.Loving,
		"mood.peaceful":  p.Mood.Peaceful,
		"mood.grateful":  p.Mood.Grateful,
		"mood.nostalgic": p.Mood.Nostalgic,
		"mood.cozy":      p.Mood.Cozy,

		"white": p.White,
	}
}

// Shadow is one elevation level. Elevation is the Android-style depth number.
type Shadow struct {
	Color     string
	OffsetX   float64
	OffsetY   float64
	Blur      float64
	Opacity   float64
	Elevation int
}

// ShadowScale holds the named elevation levels
type ShadowScale struct {
	None  Shadow
	XS    Shadow
	SM    Shadow
	MD    Shadow
	LG    Shadow
	XL    Shadow
	Glow  Shadow
	Heart Shadow
}

// Levels returns the shadow levels keyed by name
func (s ShadowScale) Levels() map[string]Shadow {
	return map[string]Shadow{
		"none":  s.None,
		"xs":    s.XS,
		"sm":    s.SM,
		"md":    s.MD,
		"lg":    s.LG,
		"xl":    s.XL,
		"glow":  s.Glow,
		"heart": s.Heart,
	}
}

// Scale is a named numeric scale (spacing, radius)
type Scale struct {
	None    int
	XXS     int
	XS      int
	SM      int
	MD      int
	LG      int
	XL      int
	XXL     int
	XXXL    int
	Huge    int
	Massive int
	Round   int
}

// SizeSet is a small/medium/large component dimension
type SizeSet struct {
	Small  int
	Medium int
	Large  int
}

// Layout holds named component dimensions
type Layout struct {
	ScreenPadding      int
	ScreenPaddingLarge int
	CardPadding        int
	CardPaddingLarge   int
	ButtonHeight       SizeSet
	InputHeight        SizeSet
	TabBarHeight       int
	TabBarPadding      int
	HeaderHeight       int
	DiaryCardMinHeight int
	TimelineNodeSize   int
	TimelineLineWidth  int
	IconSizes          []int
	AvatarSizes        []int
}

// Durations are animation durations in milliseconds
type Durations struct {
	Instant  int
	Fast     int
	Normal   int
	Slow     int
	Gentle   int
	Dramatic int
}

// DesignTokenBundle is the immutable token set for one appearance mode.
// Both bundles share the same struct type, so every token present in the
// light bundle has a counterpart in the dark bundle.
type DesignTokenBundle struct {
	Mode      Mode
	Colors    Palette
	Shadows   ShadowScale
	Spacing   Scale
	Radius    Scale
	Layout    Layout
	Durations Durations
}

// LightBundle returns a copy of the light-mode tokens
func LightBundle() DesignTokenBundle {
	return cloneBundle(lightBundle)
}

// DarkBundle returns a copy of the dark-mode tokens
func DarkBundle() DesignTokenBundle {
	return cloneBundle(darkBundle)
}

// BundleFor selects the bundle for a mode; anything but ModeDark is light
func BundleFor(m Mode) DesignTokenBundle {
	if m == ModeDark {
		return DarkBundle()
	}
	return LightBundle()
}

// cloneBundle copies the slice fields so callers cannot alias package state
func cloneBundle(b DesignTokenBundle) DesignTokenBundle {
	b.Layout.IconSizes = append([]int(nil), b.Layout.IconSizes...)
	b.Layout.AvatarSizes = append([]int(nil), b.Layout.AvatarSizes...)
	return b
}

const baseUnit = 4

var spacingScale = Scale{
	None:    0,
	XXS:     baseUnit,
	XS:      baseUnit * 2,
	SM:      baseUnit * 3,
	MD:      baseUnit * 4,
	LG:      baseUnit * 6,
	XL:      baseUnit * 8,
	XXL:     baseUnit * 10,
	XXXL:    baseUnit * 12,
	Huge:    baseUnit * 16,
	Massive: baseUnit * 20,
}

var radiusScale = Scale{
	None:  0,
	XS:    4,
	SM:    8,
	MD:    12,
	LG:    16,
	XL:    20,
	XXL:   24,
	XXXL:  32,
	Round: 9999,
}

var layout = Layout{
	ScreenPadding:      spacingScale.MD,
	ScreenPaddingLarge: spacingScale.LG,
	CardPadding:        spacingScale.MD,
	CardPaddingLarge:   spacingScale.LG,
	ButtonHeight:       SizeSet{Small: 36, Medium: 44, Large: 52},
	InputHeight:        SizeSet{Small: 40, Medium: 48, Large: 56},
	TabBarHeight:       64,
	TabBarPadding:      spacingScale.XS,
	HeaderHeight:       56,
	DiaryCardMinHeight: 120,
	TimelineNodeSize:   16,
	TimelineLineWidth:  2,
	IconSizes:          []int{16, 20, 24, 28, 32, 40, 48},
	AvatarSizes:        []int{24, 32, 40, 56, 72, 96},
}

var durations = Durations{
	Instant:  0,
	Fast:     150,
	Normal:   300,
	Slow:     500,
	Gentle:   800,
	Dramatic: 1200,
}

var lightShadows = ShadowScale{
	None:  Shadow{Color: "transparent"},
	XS:    Shadow{Color: "#8B6D6D", OffsetY: 1, Blur: 2, Opacity: 0.05, Elevation: 1},
	SM:    Shadow{Color: "#8B6D6D", OffsetY: 2, Blur: 4, Opacity: 0.06, Elevation: 2},
	MD:    Shadow{Color: "#8B6D6D", OffsetY: 4, Blur: 8, Opacity: 0.08, Elevation: 4},
	LG:    Shadow{Color: "#8B6D6D", OffsetY: 8, Blur: 16, Opacity: 0.1, Elevation: 8},
	XL:    Shadow{Color: "#8B6D6D", OffsetY: 12, Blur: 24, Opacity: 0.12, Elevation: 12},
	Glow:  Shadow{Color: "#E8A0A0", Blur: 12, Opacity: 0.3, Elevation: 6},
	Heart: Shadow{Color: "#FF6B8A", OffsetY: 4, Blur: 8, Opacity: 0.2, Elevation: 4},
}

// darkShadows keeps the light geometry and swaps color/opacity
var darkShadows = func() ShadowScale {
	s := lightShadows
	tint := func(sh Shadow, color string, opacity float64) Shadow {
		sh.Color = color
		sh.Opacity = opacity
		return sh
	}
	s.XS = tint(s.XS, "#000", 0.2)
	s.SM = tint(s.SM, "#000", 0.25)
	s.MD = tint(s.MD, "#000", 0.3)
	s.LG = tint(s.LG, "#000", 0.35)
	s.XL = tint(s.XL, "#000", 0.4)
	s.Glow = tint(s.Glow, "#B87878", 0.4)
	s.Heart = tint(s.Heart, "#D45A75", 0.3)
	return s
}()

var lightPalette = Palette{
	Primary: PrimaryColors{Rose: "#E8A0A0", RoseLight: "#F5D5D5", RoseDark: "#C97878", Blush: "#FFE4E6", Peach: "#FFDAB9"},
	Surface: SurfaceColors{Light: "#FFFAF5", Base: "#FFF5EB", Dark: "#F5EDE4"},
	Accent:  AccentColors{Lavender: "#E6E6FA", Mint: "#E0F5E9", Sky: "#E6F3FF", Honey: "#FFF3CD", Coral: "#FFB4A2"},
	Heart:   HeartColors{Pink: "#FF6B8A", Red: "#E55A5A", SoftRed: "#F28B82"},
	Text:    TextColors{Primary: "#4A3F3F", Secondary: "#7D6B6B", Tertiary: "#A69494", Light: "#C4B4B4", Inverse: "#FFFFFF"},
	UI: UIColors{
		Border:  "#F0E6E6",
		Divider: "#F5EDED",
		Shadow:  "rgba(139, 109, 109, 0.08)",
		Overlay: "rgba(74, 63, 63, 0.5)",
		Success: "#7EC8A3",
		Warning: "#F5C77E",
		Error:   "#E88B8B",
	},
	Mood: MoodColors{Joyful: "#FFD93D", Loving: "#FF6B8A", Peaceful: "#A8D8EA", Grateful: "#7EC8A3", Nostalgic: "#E6E6FA", Cozy: "#FFDAB9"},
	Gradients: Gradients{
		Sunrise: Gradient{"#FFE4E6", "#FFF5EB", "#FFFAF5"},
		Sunset:  Gradient{"#F5D5D5", "#FFE4E6", "#E6E6FA"},
		Warmth:  Gradient{"#FFF5EB", "#FFE4E6", "#F5D5D5"},
		Love:    Gradient{"#FFE4E6", "#F5D5D5", "#E8A0A0"},
	},
	White: "#FFFFFF",
}

var darkPalette = Palette{
	Primary: PrimaryColors{Rose: "#B87878", RoseLight: "#C99A9A", RoseDark: "#8B5A5A", Blush: "#3D3032", Peach: "#4A3D32"},
	Surface: SurfaceColors{Light: "#1E1A1A", Base: "#151212", Dark: "#0D0B0B"},
	Accent:  AccentColors{Lavender: "#2D2D3A", Mint: "#1E2D24", Sky: "#1E2530", Honey: "#2D2820", Coral: "#3D2D28"},
	Heart:   HeartColors{Pink: "#D45A75", Red: "#C04A4A", SoftRed: "#C87878"},
	Text:    TextColors{Primary: "#F5EDED", Secondary: "#C4B4B4", Tertiary: "#8B7878", Light: "#5A4A4A", Inverse: "#1E1A1A"},
	UI: UIColors{
		Border:  "#2D2525",
		Divider: "#252020",
		Shadow:  "rgba(0, 0, 0, 0.3)",
		Overlay: "rgba(0, 0, 0, 0.7)",
		Success: "#5A9A78",
		Warning: "#C9A05A",
		Error:   "#C87070",
	},
	Mood: MoodColors{Joyful: "#C9A032", Loving: "#D45A75", Peaceful: "#6A9AB0", Grateful: "#5A9A78", Nostalgic: "#7A7A9A", Cozy: "#C9A878"},
	Gradients: Gradients{
		Sunrise: Gradient{"#1E1A1A", "#201818", "#221919"},
		Sunset:  Gradient{"#251E1E", "#221A1A", "#201818"},
		Warmth:  Gradient{"#201818", "#251E1E", "#281F1F"},
		Love:    Gradient{"#251E1E", "#2D2222", "#352828"},
	},
	White: "#FFFFFF",
}

var (
	lightBundle = DesignTokenBundle{
		Mode:      ModeLight,
		Colors:    lightPalette,
		Shadows:   lightShadows,
		Spacing:   spacingScale,
		Radius:    radiusScale,
		Layout:    layout,
		Durations: durations,
	}
	darkBundle = DesignTokenBundle{
		Mode:      ModeDark,
		Colors:    darkPalette,
		Shadows:   darkShadows,
		Spacing:   spacingScale,
		Radius:    radiusScale,
		Layout:    layout,
		Durations: durations,
	}
)
