// Package ui contains the Bubble Tea program for the beatmap browser: a tab
// bar of sort criteria above a scrolling list of beatmap cards.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Each message
//     type with a handler in the typed registry goes to that handler; every
//     other message (tab frame ticks, for example) is forwarded to the tab
//     bar unchanged.
//   - Key presses reach the tab bar first whenever it claims them (tab
//     stepping, the overflow dropdown and its filter). Remaining keys move the
//     card cursor, toggle previews, switch Unicode metadata or cycle the
//     accent color.
//   - A tabs.SelectedMsg re-sorts the cards and keeps the hovered card under
//     the cursor.
//
// State ownership:
//   - The card cursor and viewport live in internal/ui/state.List.
//   - Cards follow the tab bar's accent through the same broadcaster the tabs
//     subscribe to, so one SetAccentColor restyles the whole screen.
//   - At most one card previews at a time; preview ticks carry a sequence
//     number so ticks from a stopped preview are ignored.
package ui
