// Package components renders the class-token contract in the terminal.
//
// # Overview
//
// Components compose their style configuration into class tokens with the
// style package and hand the tokens to a Stylesheet, which maps each token
// category onto lipgloss styling from the active Theme. Tokens without a
// rule, such as hover or transition, render with no effect.
//
// # Theme
//
// Themes are immutable and travel in a RenderContext:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := box.ViewWithContext(ctx)
//
// FollowScheme keeps a theme in step with a platform.ColorScheme.
//
// # Stylesheet
//
// A stylesheet has flags, matched against the whole category ("busy",
// "padding"), and rules, matched by the longest category prefix
// ("border-color-primary" before "border-…"):
//
//	sheet := components.NewDefaultStylesheet().
//		Flag("busy", components.Foreground(components.PaletteWarning))
//
// # Components
//
//   - Box: container driven by a style.Configuration
//   - Button: control with timed success/error feedback
//   - Modal: overlay dialog positioned by a placement.Spec
//   - Stack, Text, Header, Divider: layout primitives
package components
