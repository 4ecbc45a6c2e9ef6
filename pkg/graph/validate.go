package graph

import (
	"errors"

	"github.com/dd0wney/cluso-graphanalytics/pkg/validation"
)

var errDuplicateEdgeID = errors.New("duplicate edge ID")

func validateNode(n *Node) error {
	if err := validation.Struct(n); err != nil {
		return InvalidRecordError("node", n.ID, err)
	}
	if err := validation.Attributes(n.Attributes); err != nil {
		return InvalidRecordError("node", n.ID, err)
	}
	return nil
}

func validateEdge(e *Edge) error {
	if err := validation.Struct(e); err != nil {
		return InvalidRecordError("edge", e.ID, err)
	}
	if err := validation.Attributes(e.Attributes); err != nil {
		return InvalidRecordError("edge", e.ID, err)
	}
	return nil
}
