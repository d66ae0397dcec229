package encode

type encOpts struct {
	colors *Colors
}

type EncodeOption func(*encOpts)

// EncodeColors sets the color scheme for table output. Without it the
// table renders plain.
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encOpts) { o.colors = c }
}
