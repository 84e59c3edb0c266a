package output

// Prompt is the host-side description of a queued graph execution. It is
// embedded into saved PNGs so the image carries enough information to
// recreate it.
type Prompt struct {
	ClientID string                `json:"client_id,omitempty"`
	Nodes    map[string]PromptNode `json:"prompt"`
}

// PromptNode is one node instance within a prompt graph. Inputs hold either
// literal values or [sourceNodeID, slotIndex] connection pairs, matching the
// host's wire format.
type PromptNode struct {
	Inputs    map[string]any `json:"inputs"`
	ClassType string         `json:"class_type"`
}

// Metadata builds the tEXt payload map for Save from a prompt and an
// optional workflow graph.
func Metadata(prompt *Prompt, workflow any) map[string]any {
	md := make(map[string]any, 2)
	if prompt != nil {
		md["prompt"] = prompt
	}
	if workflow != nil {
		md["workflow"] = workflow
	}
	if len(md) == 0 {
		return nil
	}
	return md
}
