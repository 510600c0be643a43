// Package tabs implements a tab bar whose items overflow into a dropdown.
//
// Structure:
//   - Control owns the ordered, de-duplicated item set and the single
//     selection. Every width or membership change re-runs Partition, which
//     keeps the leading items that fit inline and hands the remaining suffix
//     to the Dropdown.
//   - Tab is the inline visual for one item: a three-state machine (idle,
//     hovered, active) driving label color and underline opacity tweens.
//   - Dropdown renders overflowed items as popup rows. Picking a row forwards
//     the value to Control.Select; the dropdown never activates anything on
//     its own.
//   - Accent broadcasts one color to every tab, the dropdown header and every
//     row. Each subscriber receives the current value on subscription and on
//     every change, and unsubscribes when it is removed.
//
// Model wraps a Control for Bubble Tea: it hit-tests mouse input against the
// laid-out spans, maps keys through KeyMap, requests frame ticks while any
// tween is in flight and emits SelectedMsg after selection changes.
package tabs
