package events

import "github.com/atomicstack/gallery-browser/internal/logging"

type GalleryTracer struct{}

type TaskTracer struct{}

type ViewportTracer struct{}

type PreviewTracer struct{}

var (
	Gallery  = GalleryTracer{}
	Task     = TaskTracer{}
	Viewport = ViewportTracer{}
	Preview  = PreviewTracer{}
)

func (GalleryTracer) Select(categoryID, subCategoryID string, generation uint64) {
	logging.Trace("gallery.select", map[string]interface{}{
		"category":    categoryID,
		"subcategory": subCategoryID,
		"generation":  generation,
	})
}

func (GalleryTracer) Window(visible, total int, adjusting bool) {
	logging.Trace("gallery.window", map[string]interface{}{
		"visible":   visible,
		"total":     total,
		"adjusting": adjusting,
	})
}

func (GalleryTracer) AssetFailed(key string) {
	logging.Trace("gallery.asset-failed", map[string]interface{}{"key": key})
}

func (TaskTracer) Schedule(kind string, delayMS int64, generation uint64) {
	logging.Trace("task.schedule", map[string]interface{}{
		"kind":       kind,
		"delay_ms":   delayMS,
		"generation": generation,
	})
}

func (TaskTracer) Applied(kind, key string) {
	logging.Trace("task.applied", map[string]interface{}{"kind": kind, "key": key})
}

func (TaskTracer) Stale(kind string, generation uint64) {
	logging.Trace("task.stale", map[string]interface{}{"kind": kind, "generation": generation})
}

func (ViewportTracer) Publish(kind string, listeners int) {
	logging.Trace("viewport.publish", map[string]interface{}{"kind": kind, "listeners": listeners})
}

func (ViewportTracer) Mount(subscriptions int) {
	logging.Trace("viewport.mount", map[string]interface{}{"subscriptions": subscriptions})
}

func (ViewportTracer) Unmount() {
	logging.Trace("viewport.unmount", nil)
}

func (PreviewTracer) Open(kind, id, title string) {
	logging.Trace("preview.open", map[string]interface{}{"kind": kind, "id": id, "title": title})
}

func (PreviewTracer) Close(kind string) {
	logging.Trace("preview.close", map[string]interface{}{"kind": kind})
}
