// ABOUTME: Graphviz flowchart of a grant's work breakdown and budget tree
// ABOUTME: Renders DOT output for grant → aims → milestones plus budget links
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/harperreed/grantdesk/store"
)

type GraphGenerator struct {
	store *store.Store
}

func NewGraphGenerator(s *store.Store) *GraphGenerator {
	return &GraphGenerator{store: s}
}

// GenerateGrantGraph renders one grant's structure, or every grant when
// grantID is empty.
func (g *GraphGenerator) GenerateGrantGraph(grantID string) (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetRankDir(cgraph.LRRank)

	grants := g.store.Grants()
	for _, grant := range grants {
		if grantID != "" && grant.ID != grantID {
			continue
		}

		grantNode, err := graph.CreateNodeByName(grant.Title)
		if err != nil {
			return "", fmt.Errorf("failed to create grant node: %w", err)
		}
		grantNode.SetShape(cgraph.BoxShape)

		for _, aim := range grant.Aims {
			aimNode, err := graph.CreateNodeByName(aim.Number + ": " + aim.Title)
			if err != nil {
				return "", fmt.Errorf("failed to create aim node: %w", err)
			}
			edge, _ := graph.CreateEdgeByName("", grantNode, aimNode)
			if edge != nil && aim.Status != "" {
				edge.SetLabel(aim.Status)
			}

			for _, m := range aim.Milestones {
				msNode, _ := graph.CreateNodeByName(m.Title)
				if msNode != nil {
					msNode.SetShape(cgraph.EllipseShape)
					_, _ = graph.CreateEdgeByName("", aimNode, msNode)
				}
			}
		}

		// Link in the budget tree when one references this grant
		for _, b := range g.store.BudgetsForGrant(grant.ID) {
			name := b.Name
			if name == "" {
				name = "Budget"
			}
			budgetNode, _ := graph.CreateNodeByName(name + " (" + dollars(b.TotalBudget) + ")")
			if budgetNode == nil {
				continue
			}
			budgetNode.SetShape(cgraph.BoxShape)
			_, _ = graph.CreateEdgeByName("", grantNode, budgetNode)

			for _, c := range b.Categories {
				catNode, _ := graph.CreateNodeByName(c.Name)
				if catNode == nil {
					continue
				}
				edge, _ := graph.CreateEdgeByName("", budgetNode, catNode)
				if edge != nil {
					edge.SetLabel(dollars(c.Allocated))
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}
	return buf.String(), nil
}
