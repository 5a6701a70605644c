// Package core provides the integer-indexed in-memory Graph that quiver's
// selectors and sequence views bind to, together with its per-graph
// attribute store and the lazily rebuilt name→index lookup table.
//
// The data model is dense renumbering: vertices are the integers 0..V-1 and
// edges the integers 0..E-1 at all times. Deleting vertices or edges compacts
// the numbering, drops incident edges, and compacts every attribute column in
// the same operation, so an attribute column is always exactly as long as its
// namespace. Holders of old indices (sequence views built before a deletion)
// are expected to re-validate against the live counts; core never lets a
// stale index read out of bounds.
//
// Attribute store:
//
//	Two namespaces, vertex and edge. Each is a name-keyed mapping to a
//	full-length column of values, one value per element in natural index
//	order. Columns are stored by reference: VertexAttr/EdgeAttr return the
//	live backing slice (a deliberate, documented no-copy policy consumed by
//	the seqview layer), and EnsureVertexAttr/EnsureEdgeAttr create a
//	nil-filled column on first touch.
//
// Name index:
//
//	VertexByName resolves a string name to a vertex index through a cache
//	built from the "name" vertex attribute (NameAttr). The cache is cleared —
//	not rebuilt — by any write touching NameAttr and by any topology
//	mutation, and is rebuilt lazily on the next lookup.
//
// Concurrency:
//
//	Two RWMutexes guard the graph: muTopo (vertex/edge counts, endpoints)
//	and muAttr (attribute columns, name index), locked in that order when
//	both are needed. Methods are individually safe for concurrent use, but
//	the live-slice attribute policy means multi-writer attribute access
//	requires external coordination, exactly as for any shared slice.
//
// Errors (sentinel):
//
//	– ErrNegativeCount   if a vertex count or extension is negative.
//	– ErrIndexOutOfRange if a vertex/edge index is outside the live range.
//	– ErrBadEndpoint     if an edge endpoint references a missing vertex.
//	– ErrAttrNotFound    if a requested attribute name does not exist.
//	– ErrAttrLength      if a full-column write has the wrong length.
//	– ErrNameNotFound    if a name is absent from the name index.
//	– ErrNilGraph        if a nil *Graph reaches a constructor-adjacent API.
package core
