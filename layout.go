package spotlight

// layoutTree measures the subtree rooted at v within the available size and
// positions children of vertical containers. Returns the number of views that
// were laid out.
func layoutTree(v *View, availW, availH float64) int {
	if v.disposed {
		return 0
	}
	count := 1

	w := v.Width
	if v.MatchParentWidth {
		w = availW
	}
	innerW := availW
	if w > 0 {
		innerW = w
	}
	innerW -= v.PaddingLeft + v.PaddingRight
	if innerW < 0 {
		innerW = 0
	}

	h := v.Height
	if v.MatchParentHeight {
		h = availH
	}
	innerH := availH
	if h > 0 {
		innerH = h
	}
	innerH -= v.PaddingTop + v.PaddingBottom
	if innerH < 0 {
		innerH = 0
	}

	for _, child := range v.children {
		count += layoutTree(child, innerW, innerH)
	}

	var contentW, contentH float64
	switch {
	case v.TextBlock != nil:
		if v.MatchParentWidth || v.Width > 0 {
			v.TextBlock.WrapWidth = innerW
		}
		contentW, contentH = v.TextBlock.Measure()
	case v.customImage != nil:
		b := v.customImage.Bounds()
		contentW, contentH = float64(b.Dx()), float64(b.Dy())
	}

	switch v.Layout {
	case LayoutVertical:
		cursor := v.PaddingTop
		for _, child := range v.children {
			if !child.Visible {
				continue
			}
			cw, ch := child.Size()
			child.X = v.PaddingLeft
			child.Y = cursor
			cursor += ch + child.MarginBottom
			if cw > contentW {
				contentW = cw
			}
		}
		if h := cursor - v.PaddingTop; h > contentH {
			contentH = h
		}
	default:
		for _, child := range v.children {
			if !child.Visible {
				continue
			}
			cw, ch := child.Size()
			if r := child.X + cw - v.PaddingLeft; r > contentW {
				contentW = r
			}
			if b := child.Y + ch - v.PaddingTop; b > contentH {
				contentH = b
			}
		}
	}

	if w > 0 {
		v.measuredW = w
	} else {
		v.measuredW = contentW + v.PaddingLeft + v.PaddingRight
	}
	if h > 0 {
		v.measuredH = h
	} else {
		v.measuredH = contentH + v.PaddingTop + v.PaddingBottom
	}
	v.laidOut = true
	return count
}

// runLayoutHooks fires and clears every pending one-shot post-layout hook in
// the subtree. Hooks registered while running are kept for the next pass.
func runLayoutHooks(v *View) {
	if v.disposed {
		return
	}
	if len(v.layoutHooks) > 0 {
		hooks := v.layoutHooks
		v.layoutHooks = nil
		for _, fn := range hooks {
			fn(v)
		}
	}
	// Hooks may reparent views; iterate over a snapshot.
	children := append([]*View(nil), v.children...)
	for _, child := range children {
		runLayoutHooks(child)
	}
}
