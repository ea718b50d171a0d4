package pipeline

// defaultAddons is installed, in order, with one `<pm> add` call each.
var defaultAddons = []string{
	"react-router-dom",
	"prop-types",
	"react-helmet-async",
	"styled-reset",
	"styled-components",
	"styled-components-breakpoints",
	"dayjs",
	"classnames",
	"axios",
	"react-loader-spinner",
	"react-redux",
	"@reduxjs/toolkit",
	"redux-devtools-extension",
	"react-intersection-observer",
	"react-snap",
}

// DefaultAddons returns a copy of the fixed addon package list.
func DefaultAddons() []string {
	out := make([]string, len(defaultAddons))
	copy(out, defaultAddons)
	return out
}
