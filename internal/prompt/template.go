package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/finlark/onboard/internal/domain"
)

// Render produces the final system-instruction text for a conversational
// turn by interpolating the current phase and a serialized snapshot of the
// application data into the instruction catalog.
func (ins Instruction) Render(phase domain.Phase, snap domain.Snapshot) string {
	var b strings.Builder

	b.WriteString(ins.Role)
	b.WriteString("\n\n**CRITICAL SYSTEM REQUIREMENTS**\n")
	for i, rule := range ins.Rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rule)
	}

	b.WriteString("\n**Your Primary Goal:**\n")
	fmt.Fprintf(&b, "To guide the user through our %d-step application process:\n", len(ins.Steps))
	for i, step := range ins.Steps {
		fmt.Fprintf(&b, "%d. **%s:** %s\n", i+1, step.Name, step.Goal)
		for _, note := range step.Notes {
			fmt.Fprintf(&b, "    - %s\n", note)
		}
	}

	b.WriteString("\n**How to Behave:**\n")
	for _, item := range ins.Behavior {
		fmt.Fprintf(&b, "- %s\n", item)
	}

	b.WriteString("\n--------------------------------\n")
	b.WriteString("**BANK OF AMERICA MERCHANT SERVICES INFORMATION:**\n")
	b.WriteString("**Transparent Pricing Structure:**\n")
	for _, rate := range ins.Rates {
		fmt.Fprintf(&b, "- **%s:** %s\n", rate.Method, rate.Rate)
	}

	b.WriteString("\n**Business Type Recommendations:**\n")
	for _, p := range ins.Profiles {
		fmt.Fprintf(&b, "\n**%s:**\n", p.Type)
		fmt.Fprintf(&b, "- Recommended: %s\n", p.Recommended)
		fmt.Fprintf(&b, "- Key Features: %s\n", p.Features)
		if p.Accessories != "" {
			fmt.Fprintf(&b, "- Accessories: %s\n", p.Accessories)
		}
	}

	b.WriteString("\n**Solution Categories:**\n")
	for i, s := range ins.Solutions {
		fmt.Fprintf(&b, "\n**%d. %s:**\n", i+1, s.Name)
		fmt.Fprintf(&b, "- Devices: %s\n", s.Devices)
		fmt.Fprintf(&b, "- Features: %s\n", s.Features)
		fmt.Fprintf(&b, "- Best for: %s\n", s.BestFor)
	}

	b.WriteString("\n**Hardware Options & Pricing:**\n")
	for _, group := range ins.Hardware {
		fmt.Fprintf(&b, "\n**%s:**\n", group.Name)
		for _, item := range group.Items {
			fmt.Fprintf(&b, "- **%s:** %s - %s\n", item.Name, item.Price, item.Description)
		}
	}

	b.WriteString("\n-------------------------\n")
	b.WriteString("\n**How to use UI Actions:**\n")
	for _, d := range ins.Directives {
		fmt.Fprintf(&b, "- %s\n", d.Usage)
	}

	b.WriteString("\n**List of available Images:**\n")
	for _, img := range ins.Images {
		fmt.Fprintf(&b, "- '%s' - %s\n", img.File, img.Description)
	}

	b.WriteString("\n**Current State of the Application:**\n")
	fmt.Fprintf(&b, "- CURRENT PHASE: %s\n", phase)
	fmt.Fprintf(&b, "- COLLECTED DATA: %s\n", serializeSnapshot(snap))

	b.WriteString("\n**MANDATORY RESPONSE FORMAT**\n")
	b.WriteString("Your response MUST be a single, valid JSON object with NO additional text, markdown, or explanations outside the JSON. The system will crash if you deviate from this format.\n")
	b.WriteString("\n**REQUIRED JSON STRUCTURE:** (**return only this JSON object, no other text or markdown!**)\n")
	b.WriteString(ins.Schema)
	b.WriteString("\n\n**RESPONSE GUIDELINES:**\n")
	for i, g := range ins.Guidelines {
		fmt.Fprintf(&b, "%d. %s\n", i+1, g)
	}

	b.WriteString("\n**EXAMPLE GOOD RESPONSE:** (only return the JSON object, no other text or markdown!)\n")
	b.WriteString(ins.ExampleResponse)
	b.WriteString("\n\n**Remember:** EVERY response must move the application process forward with a specific action or question. Never provide purely informational responses.")

	return b.String()
}

// serializeSnapshot renders the application snapshot as indented JSON so the
// model sees the accumulated facts verbatim.
func serializeSnapshot(snap domain.Snapshot) string {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
