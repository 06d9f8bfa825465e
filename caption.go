package spotlight

// CaptionPlacement says on which side of the cutout a caption sits.
type CaptionPlacement uint8

const (
	CaptionBelow CaptionPlacement = iota // caption starts under the cutout
	CaptionAbove                         // caption ends over the cutout
)

func (p CaptionPlacement) String() string {
	if p == CaptionAbove {
		return "above"
	}
	return "below"
}

// Caption layout constants, in pixels.
const (
	captionMargin       = 100 // gap between the cutout edge and the caption
	captionInset        = 100 // horizontal padding on both sides
	captionTitleSpacing = 16  // gap between title and description
)

// Default caption font sizes.
const (
	DefaultTitleSize       = 24
	DefaultDescriptionSize = 18
)

// PlaceCaption decides where a caption container of containerHeight goes for
// a cutout at pointY with radius, on a screen screenHeight tall. The caption
// takes whichever half has more room, preferring below on a tie, and returns
// the container's top edge.
func PlaceCaption(pointY, radius, screenHeight, containerHeight float64) (CaptionPlacement, float64) {
	above := pointY / screenHeight
	below := (screenHeight - pointY) / screenHeight
	if above > below {
		return CaptionAbove, pointY - radius - captionMargin - containerHeight
	}
	return CaptionBelow, pointY + radius + captionMargin
}

// CaptionConfig describes the title and description shown next to a cutout.
// Zero values fall back to the bundled Go fonts at the default sizes in white.
type CaptionConfig struct {
	Title       string
	Description string

	// TitleFont overrides the default bold font; TitleSize is ignored then.
	TitleFont Font
	TitleSize float64
	// DescriptionFont overrides the default regular font.
	DescriptionFont Font
	DescriptionSize float64

	TitleColor       Color
	DescriptionColor Color
}

// Caption is the decoration built by NewCaptionTarget.
type Caption struct {
	root        *View
	container   *View
	title       *View
	description *View

	placed    bool
	placement CaptionPlacement
}

// Root returns the full-width view hosted by the overlay.
func (c *Caption) Root() *View {
	return c.root
}

// Container returns the vertical container holding the title and description.
func (c *Caption) Container() *View {
	return c.container
}

// Title returns the title text view.
func (c *Caption) Title() *View {
	return c.title
}

// Description returns the description text view.
func (c *Caption) Description() *View {
	return c.description
}

// Placed reports whether the post-layout placement has run.
func (c *Caption) Placed() bool {
	return c.placed
}

// Placement returns the side chosen by the post-layout placement. Only
// meaningful once Placed is true.
func (c *Caption) Placement() CaptionPlacement {
	return c.placement
}

// NewCaptionTarget builds a target whose decoration is a title and a
// description laid out vertically. The caption is placed above or below the
// cutout once, after its first layout pass, when its height is known.
func NewCaptionTarget(cfg TargetConfig, caption CaptionConfig) (*Target, error) {
	point, radius, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	c, err := newCaption(caption)
	if err != nil {
		return nil, err
	}

	host := cfg.Host
	c.container.AfterLayout(func(v *View) {
		_, h := v.Size()
		c.placement, v.Y = PlaceCaption(point.Y, radius, host.Size().Y, h)
		c.placed = true
		v.Visible = true
		host.Logger().Debug().
			Str("placement", c.placement.String()).
			Float64("y", v.Y).
			Float64("height", h).
			Msg("spotlight: caption placed")
	})

	return &Target{point: point, radius: radius, view: c.root, caption: c}, nil
}

func newCaption(cfg CaptionConfig) (*Caption, error) {
	titleFont, err := captionFont(cfg.TitleFont, true, cfg.TitleSize, DefaultTitleSize)
	if err != nil {
		return nil, err
	}
	descFont, err := captionFont(cfg.DescriptionFont, false, cfg.DescriptionSize, DefaultDescriptionSize)
	if err != nil {
		return nil, err
	}

	root := NewView("caption")
	root.MatchParentWidth = true

	container := NewView("caption_container")
	container.Layout = LayoutVertical
	container.MatchParentWidth = true
	container.PaddingLeft = captionInset
	container.PaddingRight = captionInset
	// Hidden until placed so it never flashes at the top of the screen.
	container.Visible = false
	root.AddChild(container)

	title := NewTextView("caption_title", cfg.Title, titleFont)
	title.MatchParentWidth = true
	title.MarginBottom = captionTitleSpacing
	title.TextBlock.Color = colorOrWhite(cfg.TitleColor)
	container.AddChild(title)

	desc := NewTextView("caption_description", cfg.Description, descFont)
	desc.MatchParentWidth = true
	desc.TextBlock.Color = colorOrWhite(cfg.DescriptionColor)
	container.AddChild(desc)

	return &Caption{root: root, container: container, title: title, description: desc}, nil
}

func captionFont(f Font, bold bool, size, fallback float64) (Font, error) {
	if f != nil {
		return f, nil
	}
	if size <= 0 {
		size = fallback
	}
	return DefaultFont(bold, size)
}

func colorOrWhite(c Color) Color {
	if c == (Color{}) {
		return ColorWhite
	}
	return c
}
