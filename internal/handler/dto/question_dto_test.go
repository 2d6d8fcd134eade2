package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    FlexInt
		wantErr bool
	}{
		{input: `3`, want: 3},
		{input: `"3"`, want: 3},
		{input: `" 4 "`, want: 4},
		{input: `""`, want: 0},
		{input: `null`, want: 0},
		{input: `-1`, want: -1},
		{input: `"abc"`, wantErr: true},
		{input: `2.5`, wantErr: true},
		{input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got FlexInt
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlexInt_Uint(t *testing.T) {
	assert.Equal(t, uint(5), FlexInt(5).Uint())
	assert.Equal(t, uint(0), FlexInt(-3).Uint())
}

func TestCreateQuestionRequest_Decode(t *testing.T) {
	var req CreateQuestionRequest
	err := json.Unmarshal([]byte(`{"question":"q","answer":"a","category":"2","difficulty":3}`), &req)
	require.NoError(t, err)

	assert.Equal(t, 2, req.Category.Int())
	assert.Equal(t, 3, req.Difficulty.Int())
}

func TestQuizResponse_NullQuestion(t *testing.T) {
	data, err := json.Marshal(QuizResponse{Success: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"question":null}`, string(data))
}
