// Package ui contains the Bubble Tea program that hosts a scrolling list.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Mouse events are shifted by the configured padding so the list receives
//     coordinates relative to its own top-left corner. Left presses become row
//     clicks; wheel events scroll the list viewport.
//   - Window size events resize the list to the space left after padding and
//     the status/footer rows, unless a fixed size was configured.
//
// State ownership:
//   - The scrollinglist.List owns the items, the rows and the selection. The
//     model only owns layout and the status line, which the application's
//     approval callback updates through SetInfo.
package ui
