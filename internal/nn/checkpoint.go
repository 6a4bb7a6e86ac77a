package nn

import (
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot is the serializable state of a trained network: everything
// needed to resume training or re-render a saved run, minus the transient
// per-step fields.
//
// A snapshot restores onto a network built from the same Config; the
// structural fields (ids, link endpoints) double as a consistency check.
type Snapshot struct {
	Nodes []NodeSnapshot `json:"nodes"`
	Links []LinkSnapshot `json:"links"`
}

// NodeSnapshot carries one node's persistent state.
type NodeSnapshot struct {
	ID    string  `json:"id"`
	Bias  float64 `json:"bias"`
	MBias float64 `json:"mBias,omitempty"`
	VBias float64 `json:"vBias,omitempty"`

	BatchNormGamma float64 `json:"bnGamma"`
	BatchNormBeta  float64 `json:"bnBeta"`
	LayerNormGamma float64 `json:"lnGamma"`
	LayerNormBeta  float64 `json:"lnBeta"`
}

// LinkSnapshot carries one link's persistent state.
type LinkSnapshot struct {
	ID      string  `json:"id"`
	Weight  float64 `json:"weight"`
	IsDead  bool    `json:"isDead,omitempty"`
	MWeight float64 `json:"mWeight,omitempty"`
	VWeight float64 `json:"vWeight,omitempty"`
}

// Snapshot captures the network's persistent state.
func (n *Network) Snapshot() *Snapshot {
	snap := &Snapshot{}
	n.ForEachNode(false, func(_ NodeRef, node *Node) {
		snap.Nodes = append(snap.Nodes, NodeSnapshot{
			ID:             node.ID,
			Bias:           node.Bias,
			MBias:          node.MBias,
			VBias:          node.VBias,
			BatchNormGamma: node.BatchNormGamma,
			BatchNormBeta:  node.BatchNormBeta,
			LayerNormGamma: node.LayerNormGamma,
			LayerNormBeta:  node.LayerNormBeta,
		})
	})
	for i := range n.Links {
		link := &n.Links[i]
		snap.Links = append(snap.Links, LinkSnapshot{
			ID:      link.ID,
			Weight:  link.Weight,
			IsDead:  link.IsDead,
			MWeight: link.MWeight,
			VWeight: link.VWeight,
		})
	}
	return snap
}

// Restore loads a snapshot into the network. The network must have the
// same structure the snapshot was taken from: node and link ids are
// matched positionally and verified.
func (n *Network) Restore(snap *Snapshot) error {
	idx := 0
	var err error
	n.ForEachNode(false, func(_ NodeRef, node *Node) {
		if err != nil {
			return
		}
		if idx >= len(snap.Nodes) || snap.Nodes[idx].ID != node.ID {
			err = fmt.Errorf("nn: snapshot does not match network at node %q", node.ID)
			return
		}
		s := snap.Nodes[idx]
		node.Bias = s.Bias
		node.MBias = s.MBias
		node.VBias = s.VBias
		node.BatchNormGamma = s.BatchNormGamma
		node.BatchNormBeta = s.BatchNormBeta
		node.LayerNormGamma = s.LayerNormGamma
		node.LayerNormBeta = s.LayerNormBeta
		idx++
	})
	if err != nil {
		return err
	}
	if idx != len(snap.Nodes) {
		return fmt.Errorf("nn: snapshot has %d nodes, network has %d", len(snap.Nodes), idx)
	}
	if len(snap.Links) != len(n.Links) {
		return fmt.Errorf("nn: snapshot has %d links, network has %d", len(snap.Links), len(n.Links))
	}
	for i := range n.Links {
		link := &n.Links[i]
		s := snap.Links[i]
		if s.ID != link.ID {
			return fmt.Errorf("nn: snapshot does not match network at link %q", link.ID)
		}
		link.Weight = s.Weight
		link.IsDead = s.IsDead
		link.MWeight = s.MWeight
		link.VWeight = s.VWeight
	}
	return nil
}

// SaveCheckpoint writes the network's snapshot to path as JSON.
func (n *Network) SaveCheckpoint(path string) error {
	data, err := json.MarshalIndent(n.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("nn: encoding checkpoint: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("nn: writing checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint reads a JSON snapshot from path and restores it.
func (n *Network) LoadCheckpoint(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("nn: reading checkpoint: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("nn: decoding checkpoint: %w", err)
	}
	return n.Restore(&snap)
}
