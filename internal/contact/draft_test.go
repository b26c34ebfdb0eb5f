package contact

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateField_LastWriteWins(t *testing.T) {
	type edit struct {
		field Field
		value string
	}

	tests := []struct {
		name  string
		edits []edit
		want  Draft
	}{
		{
			name: "no edits",
			want: Draft{},
		},
		{
			name:  "single field",
			edits: []edit{{FieldEmail, "jo@x.com"}},
			want:  Draft{Email: "jo@x.com"},
		},
		{
			name: "repeated edits keep the latest",
			edits: []edit{
				{FieldName, "J"},
				{FieldName, "Jo"},
				{FieldMessage, "Hello"},
				{FieldMessage, "Hi"},
			},
			want: Draft{Name: "Jo", Message: "Hi"},
		},
		{
			name: "all fields",
			edits: []edit{
				{FieldName, "Jo"},
				{FieldEmail, "jo@x.com"},
				{FieldPhone, "555"},
				{FieldMessage, "Hi"},
			},
			want: Draft{Name: "Jo", Email: "jo@x.com", Phone: "555", Message: "Hi"},
		},
		{
			name:  "clearing a field",
			edits: []edit{{FieldPhone, "555"}, {FieldPhone, ""}},
			want:  Draft{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Draft
			for _, e := range tt.edits {
				d = UpdateField(d, e.field, e.value)
			}
			if diff := cmp.Diff(tt.want, d); diff != "" {
				t.Errorf("draft mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateField_DoesNotMutateInput(t *testing.T) {
	original := Draft{Name: "Jo"}
	updated := UpdateField(original, FieldName, "Ann")

	assert.Equal(t, "Jo", original.Name)
	assert.Equal(t, "Ann", updated.Name)
}

func TestUpdateField_UnknownFieldIsNoop(t *testing.T) {
	d := Draft{Name: "Jo"}
	assert.Equal(t, d, UpdateField(d, Field("company"), "Acme"))
}

func TestParseField(t *testing.T) {
	for _, f := range Fields() {
		got, err := ParseField(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseField("  EMAIL ")
	require.NoError(t, err)
	assert.Equal(t, FieldEmail, got)

	_, err = ParseField("bot-field")
	assert.Error(t, err)
}

func TestDraft_IsEmpty(t *testing.T) {
	assert.True(t, Draft{}.IsEmpty())
	assert.False(t, Draft{Phone: "1"}.IsEmpty())
}

func TestEncode_IncludesDiscriminatorAndAllFields(t *testing.T) {
	d := Draft{
		Name:    "Jo & Ann",
		Email:   "a+b@x.com",
		Phone:   "+1 555",
		Message: "Hi\nthere=you",
	}

	body := Encode(d)

	values, err := url.ParseQuery(body)
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"form-name": {"contact"},
		"name":      {"Jo & Ann"},
		"email":     {"a+b@x.com"},
		"phone":     {"+1 555"},
		"message":   {"Hi\nthere=you"},
	}, values)

	// percent-encoded on the wire
	assert.Contains(t, body, "name=Jo+%26+Ann")
	assert.Contains(t, body, "email=a%2Bb%40x.com")
	assert.Contains(t, body, "message=Hi%0Athere%3Dyou")
}

func TestEncode_EmptyDraftStillSendsKeys(t *testing.T) {
	values, err := url.ParseQuery(Encode(Draft{}))
	require.NoError(t, err)

	assert.Equal(t, "contact", values.Get(FormNameKey))
	for _, f := range Fields() {
		assert.Contains(t, values, string(f))
		assert.Empty(t, values.Get(string(f)))
	}
}
