package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "Pretty", format: "pretty"},
		{name: "CSV", format: "csv"},
		{name: "Empty", format: "", wantErr: true},
		{name: "Unknown", format: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestValidateObjective(t *testing.T) {
	tests := []struct {
		name      string
		objective string
		wantErr   bool
	}{
		{name: "Outcome", objective: "outcome"},
		{name: "Profit", objective: "profit"},
		{name: "Empty", objective: "", wantErr: true},
		{name: "Unknown", objective: "clicks", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateObjective(tt.objective)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateObjective(%q) error = %v, wantErr %v", tt.objective, err, tt.wantErr)
			}
		})
	}
}
