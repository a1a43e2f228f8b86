package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChequeUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Cheque
	}{
		{name: "backend field name", in: `{"chequeNo":"100","approvalStatus":true}`, want: Cheque{ChequeNo: "100", ApprovalGranted: true}},
		{name: "frontend field name", in: `{"chequeNo":"101","approvalGranted":true}`, want: Cheque{ChequeNo: "101", ApprovalGranted: true}},
		{name: "granted wins", in: `{"chequeNo":"102","approvalGranted":false,"approvalStatus":true}`, want: Cheque{ChequeNo: "102"}},
		{name: "null approval", in: `{"chequeNo":"103","approvalStatus":null}`, want: Cheque{ChequeNo: "103"}},
		{name: "missing approval", in: `{"chequeNo":"104"}`, want: Cheque{ChequeNo: "104"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Cheque
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChequeListUnmarshal(t *testing.T) {
	var got []Cheque
	err := json.Unmarshal([]byte(`[{"chequeNo":"1","approvalStatus":true},{"chequeNo":"2","approvalStatus":false}]`), &got)
	require.NoError(t, err)
	assert.Equal(t, []Cheque{{ChequeNo: "1", ApprovalGranted: true}, {ChequeNo: "2"}}, got)
}

func TestChequeUnmarshalRejectsWrongType(t *testing.T) {
	var got Cheque
	assert.Error(t, json.Unmarshal([]byte(`{"chequeNo":"1","approvalStatus":"yes"}`), &got))
}

func TestChequeMarshal(t *testing.T) {
	data, err := json.Marshal(Cheque{ChequeNo: "7", ApprovalGranted: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"chequeNo":"7","approvalGranted":true}`, string(data))
}
