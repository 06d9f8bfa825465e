package spotlight

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML form of a Spotlight theme. Omitted fields keep the
// package defaults when applied.
//
//	duration_ms: 800
//	easing: out_quart
//	mask_color: "#E6000000"
//	caption:
//	  title_size: 28
//	  title_color: "#FFFFD54F"
//
// A mask_color of "#00000000" equals the zero Color and so keeps the
// default mask.
type FileConfig struct {
	DurationMS    int          `yaml:"duration_ms,omitempty"`
	MaskFadeInMS  int          `yaml:"mask_fade_in_ms,omitempty"`
	MaskFadeOutMS int          `yaml:"mask_fade_out_ms,omitempty"`
	Easing        string       `yaml:"easing,omitempty"`
	MaskColor     string       `yaml:"mask_color,omitempty"`
	Caption       CaptionTheme `yaml:"caption,omitempty"`
}

// CaptionTheme holds the caption styling keys of a FileConfig.
type CaptionTheme struct {
	TitleSize        float64 `yaml:"title_size,omitempty"`
	DescriptionSize  float64 `yaml:"description_size,omitempty"`
	TitleColor       string  `yaml:"title_color,omitempty"`
	DescriptionColor string  `yaml:"description_color,omitempty"`
}

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in_quad":      ease.InQuad,
	"out_quad":     ease.OutQuad,
	"in_out_quad":  ease.InOutQuad,
	"in_cubic":     ease.InCubic,
	"out_cubic":    ease.OutCubic,
	"in_out_cubic": ease.InOutCubic,
	"in_quart":     ease.InQuart,
	"out_quart":    ease.OutQuart,
	"in_out_quart": ease.InOutQuart,
	"in_sine":      ease.InSine,
	"out_sine":     ease.OutSine,
	"in_out_sine":  ease.InOutSine,
	"in_expo":      ease.InExpo,
	"out_expo":     ease.OutExpo,
	"out_back":     ease.OutBack,
	"out_bounce":   ease.OutBounce,
	"out_elastic":  ease.OutElastic,
}

// EasingByName returns the easing registered under name, such as "out_quart".
func EasingByName(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// EasingNames returns every name accepted by EasingByName, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadConfigFile reads and validates a YAML config file.
func LoadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spotlight: read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates YAML config data.
func ParseConfig(data []byte) (*FileConfig, error) {
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("spotlight: parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (f *FileConfig) validate() error {
	for _, d := range []struct {
		key string
		ms  int
	}{
		{"duration_ms", f.DurationMS},
		{"mask_fade_in_ms", f.MaskFadeInMS},
		{"mask_fade_out_ms", f.MaskFadeOutMS},
	} {
		if d.ms < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrConfiguration, d.key, d.ms)
		}
	}
	if f.Easing != "" {
		if _, ok := EasingByName(f.Easing); !ok {
			return fmt.Errorf("%w: unknown easing %q (want one of %s)",
				ErrConfiguration, f.Easing, strings.Join(EasingNames(), ", "))
		}
	}
	for _, c := range []struct {
		key, hex string
	}{
		{"mask_color", f.MaskColor},
		{"caption.title_color", f.Caption.TitleColor},
		{"caption.description_color", f.Caption.DescriptionColor},
	} {
		if c.hex == "" {
			continue
		}
		if _, err := ParseColor(c.hex); err != nil {
			return fmt.Errorf("%s: %w", c.key, err)
		}
	}
	if f.Caption.TitleSize < 0 || f.Caption.DescriptionSize < 0 {
		return fmt.Errorf("%w: caption font sizes must not be negative", ErrConfiguration)
	}
	return nil
}

// Apply copies every set field onto cfg. The FileConfig must have been
// validated by ParseConfig or LoadConfigFile.
func (f *FileConfig) Apply(cfg *Config) {
	if f.DurationMS > 0 {
		cfg.Duration = time.Duration(f.DurationMS) * time.Millisecond
	}
	if f.MaskFadeInMS > 0 {
		cfg.MaskFadeIn = time.Duration(f.MaskFadeInMS) * time.Millisecond
	}
	if f.MaskFadeOutMS > 0 {
		cfg.MaskFadeOut = time.Duration(f.MaskFadeOutMS) * time.Millisecond
	}
	if fn, ok := EasingByName(f.Easing); ok {
		cfg.Easing = fn
	}
	if c, err := ParseColor(f.MaskColor); err == nil {
		cfg.MaskColor = c
	}
}

// ApplyCaption copies the caption theme onto c.
func (f *FileConfig) ApplyCaption(c *CaptionConfig) {
	if f.Caption.TitleSize > 0 {
		c.TitleSize = f.Caption.TitleSize
	}
	if f.Caption.DescriptionSize > 0 {
		c.DescriptionSize = f.Caption.DescriptionSize
	}
	if col, err := ParseColor(f.Caption.TitleColor); err == nil {
		c.TitleColor = col
	}
	if col, err := ParseColor(f.Caption.DescriptionColor); err == nil {
		c.DescriptionColor = col
	}
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB" (alpha first).
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("%w: bad color %q", ErrConfiguration, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: bad color %q", ErrConfiguration, s)
	}
	a := uint64(0xFF)
	if len(hex) == 8 {
		a = v >> 24 & 0xFF
	}
	return Color{
		R: float64(v>>16&0xFF) / 255,
		G: float64(v>>8&0xFF) / 255,
		B: float64(v&0xFF) / 255,
		A: float64(a) / 255,
	}, nil
}
