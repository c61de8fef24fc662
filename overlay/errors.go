package overlay

// CapabilityError is the panic value raised when insert, update or remove
// is called on a model whose plan never authorized that operation.
type CapabilityError struct {
	Op string // "insert", "update" or "remove"
}

func (e *CapabilityError) Error() string {
	return "overlay: model does not support " + e.Op
}

// RendererError is the panic value raised when a plan carries no usable
// builder: a nil builder handed to a constructor, or a zero-value Plan
// reaching entry construction.
type RendererError struct {
	Reason string
}

func (e *RendererError) Error() string {
	return "overlay: " + e.Reason
}
