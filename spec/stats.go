package spec

// DocumentStats contains statistical information about a loaded document.
type DocumentStats struct {
	// PathCount is the number of path templates in the document.
	PathCount int
	// OperationCount is the number of (path, method) operations.
	OperationCount int
	// SchemaCount is the number of component schemas.
	SchemaCount int
	// ServerCount is the number of server entries.
	ServerCount int
}

// ComputeStats counts the document's paths, operations, component
// schemas, and servers.
func ComputeStats(doc *Document) DocumentStats {
	var stats DocumentStats
	if doc == nil {
		return stats
	}
	stats.PathCount = len(doc.Paths)
	stats.ServerCount = len(doc.Servers)
	for _, item := range doc.Paths {
		if item == nil {
			continue
		}
		stats.OperationCount += len(item.Operations())
	}
	if doc.Components != nil {
		stats.SchemaCount = len(doc.Components.Schemas)
	}
	return stats
}
