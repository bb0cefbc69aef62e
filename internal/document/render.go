package document

// Renderer converts a built Documento into bytes for one target
// medium. The terminal preview and the PDF exporter both implement
// this and consume the same tree.
type Renderer interface {
	Name() string
	Render(doc *Documento) ([]byte, error)
}
