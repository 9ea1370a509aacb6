// Package ui contains the Bubble Tea program that renders the navigation
// menu in a terminal. The package is structured so the Model type focuses on
// message orchestration, while dedicated helpers own navigation, input,
// rendering, and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by a
//     focused function (navigation for key presses, the render bridge for
//     controller notifications, the watcher bridge for background polls).
//   - The controller never touches the terminal directly. Its renderer
//     notifications (tree mounts, phase changes, errors) are adapted into
//     tea.Msg values by renderBridge, and Update folds them into the visible
//     row list.
//   - Cursor movement over a submenu trigger simulates pointer dwell by
//     forwarding PointerEnter/PointerLeave through the router, so hover-delay
//     semantics apply in the terminal the same way they do for a pointer.
//
// State ownership:
//   - Row, filter, and viewport state live in internal/ui/state.List.
//   - Open/closed submenu phases live in the controller; the view queries
//     them when flattening the tree into rows.
//   - Leaf activations run asynchronously through internal/ui/command.
package ui
