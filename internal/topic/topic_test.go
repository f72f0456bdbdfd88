package topic

import "testing"

func TestExtract_ActionAndScenario(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{
			name:     "action and scenario",
			question: "What should I do after a car accident?",
			want:     "what should i do after accident",
		},
		{
			name:     "how to with theft",
			question: "How to report a theft to the police",
			want:     "how to after theft",
		},
		{
			name:     "first action in list order wins",
			question: "what should i do and how to proceed after theft",
			want:     "what should i do after theft",
		},
		{
			name:     "first scenario in list order wins regardless of position",
			question: "how to handle harassment after an accident",
			want:     "how to after accident",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.question); got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.question, got, tt.want)
			}
		})
	}
}

func TestExtract_ScenarioOnly(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{"my neighbour started a land dispute", "actions to be taken in case of land dispute"},
		{"is divorce expensive?", "actions to be taken in case of divorce"},
		{"TRESPASS on my property", "actions to be taken in case of trespass"},
	}

	for _, tt := range tests {
		if got := Extract(tt.question); got != tt.want {
			t.Errorf("Extract(%q) = %q, want %q", tt.question, got, tt.want)
		}
	}
}

func TestExtract_Fallback(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{
			name:     "first five words, original casing",
			question: "Can My Landlord Raise The Rent Twice A Year",
			want:     "Can My Landlord Raise The",
		},
		{
			name:     "fewer than five words",
			question: "Is this legal?",
			want:     "Is this legal?",
		},
		{
			name:     "collapses repeated whitespace",
			question: "what   about    tenant  rights   here  now",
			want:     "what about tenant rights here",
		},
		{
			name:     "empty input",
			question: "",
			want:     "",
		},
		{
			name:     "whitespace only",
			question: "   \t ",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.question); got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.question, got, tt.want)
			}
		})
	}
}

func TestExtract_Deterministic(t *testing.T) {
	const q = "what are the steps to take after a contract breach?"
	first := Extract(q)
	for i := 0; i < 10; i++ {
		if got := Extract(q); got != first {
			t.Fatalf("Extract is not deterministic: %q vs %q", got, first)
		}
	}
}
