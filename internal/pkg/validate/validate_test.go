package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleInput struct {
	Username  string  `validate:"required,min=3,max=50,alphanum"`
	Email     string  `validate:"required,email"`
	Amount    float64 `validate:"gt=0"`
	VoteType  string  `validate:"omitempty,oneof=yes no abstain"`
	MonthYear string  `validate:"omitempty,datetime=2006-01"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(&sampleInput{
		Username:  "bilal99",
		Email:     "bilal@example.com",
		Amount:    1500,
		VoteType:  "yes",
		MonthYear: "2024-06",
	})
	assert.NoError(t, err)
}

func TestStruct_FieldMessages(t *testing.T) {
	tests := []struct {
		name    string
		input   sampleInput
		wantMsg string
	}{
		{
			name:    "missing username",
			input:   sampleInput{Email: "a@b.com", Amount: 1},
			wantMsg: "field Username is required",
		},
		{
			name:    "bad email",
			input:   sampleInput{Username: "bilal99", Email: "not-an-email", Amount: 1},
			wantMsg: "field Email must be a valid email address",
		},
		{
			name:    "short username",
			input:   sampleInput{Username: "ab", Email: "a@b.com", Amount: 1},
			wantMsg: "field Username must be at least 3 characters",
		},
		{
			name:    "zero amount",
			input:   sampleInput{Username: "bilal99", Email: "a@b.com", Amount: 0},
			wantMsg: "field Amount must be greater than 0",
		},
		{
			name:    "bad vote type",
			input:   sampleInput{Username: "bilal99", Email: "a@b.com", Amount: 1, VoteType: "maybe"},
			wantMsg: "field VoteType must be one of: yes no abstain",
		},
		{
			name:    "bad month format",
			input:   sampleInput{Username: "bilal99", Email: "a@b.com", Amount: 1, MonthYear: "06-2024"},
			wantMsg: "field MonthYear must be a date in format 2006-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.input)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
