// Package ui contains the Bubble Tea program that renders the gallery.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (navigation for key presses, layout for resizes and the mouse
//     wheel, the command bus for due gallery tasks).
//   - Geometry changes are published on a viewport.Hub. The dispatcher feeds
//     them to the gallery controller and queues whatever tasks it returns;
//     the model drains the queue and hands the tasks to command.Bus, which
//     turns them into tea.Tick commands.
//   - When a task comes due the model passes it back to Controller.Complete.
//     Tasks from an older selection are discarded there.
//
// State ownership:
//   - Selection, the visibility window and the lazy-reveal tracker live in
//     internal/gallery and know nothing about terminals.
//   - Cursor and scroll offset live in internal/ui/state.Grid, one per view.
//   - The preview modal reuses gallery.Preview for both images and videos.
package ui
