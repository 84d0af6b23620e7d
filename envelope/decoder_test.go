package envelope

import (
	"encoding/json"
	"testing"

	"github.com/s0up4200/foursquare/mapping"
	"github.com/s0up4200/foursquare/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const venueBody = `{
	"meta": {"code": 200},
	"notifications": [{"type": "notificationTray", "item": {"unreadCount": 2}}],
	"response": {"venue": {"id": "4ab7e57cf964a5205f7b20e3", "name": "Kiasma"}, "count": 3}
}`

func ok(body string) *transport.Response {
	return &transport.Response{StatusCode: 200, Body: []byte(body), Message: "OK"}
}

func TestDecode(t *testing.T) {
	env, err := Decode(ok(venueBody), false)
	require.NoError(t, err)

	assert.Equal(t, Meta{Code: 200}, env.Meta)
	assert.True(t, env.OK())
	assert.Len(t, env.Notifications, 1)

	venue, err := env.Object("venue")
	require.NoError(t, err)
	assert.Equal(t, "Kiasma", venue["name"])
	assert.Equal(t, json.Number("3"), env.Response["count"])
}

func TestDecodeCallbackRoundTrip(t *testing.T) {
	plain, err := Decode(ok(venueBody), false)
	require.NoError(t, err)

	wrapped, err := Decode(ok("c("+venueBody+");"), true)
	require.NoError(t, err)
	assert.Equal(t, plain, wrapped)

	padded, err := Decode(ok("\n c("+venueBody+");\n"), true)
	require.NoError(t, err)
	assert.Equal(t, plain, padded)
}

func TestDecodeCallbackWrapperMissing(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no suffix", body: "c(" + venueBody + ")"},
		{name: "no prefix", body: venueBody + ");"},
		{name: "bare json", body: venueBody},
		{name: "other callback name", body: "cb(" + venueBody + ");"},
		{name: "empty", body: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Decode(ok(tt.body), true)
			assert.Nil(t, env)
			var pe *ProtocolError
			require.ErrorAs(t, err, &pe)
			assert.ErrorIs(t, err, ErrMissingCallback)
		})
	}
}

func TestDecodeNonOKStatus(t *testing.T) {
	resp := &transport.Response{StatusCode: 404, Message: "Not Found", Body: []byte("<html>nope</html>")}

	for _, callback := range []bool{true, false} {
		env, err := Decode(resp, callback)
		require.NoError(t, err)
		assert.Equal(t, Meta{Code: 404, ErrorType: "", ErrorDetail: "Not Found"}, env.Meta)
		assert.True(t, env.Meta.IsNotFound())
		assert.False(t, env.OK())
		assert.Nil(t, env.Response)
		assert.Nil(t, env.Notifications)
	}
}

func TestDecodeMetaError(t *testing.T) {
	env, err := Decode(ok(`{"meta": {"code": 401, "errorType": "invalid_auth", "errorDetail": "OAuth token invalid"}, "response": {}}`), false)
	require.NoError(t, err)

	assert.Equal(t, Meta{Code: 401, ErrorType: "invalid_auth", ErrorDetail: "OAuth token invalid"}, env.Meta)
	assert.True(t, env.Meta.IsUnauthorized())
	assert.Nil(t, env.Response)

	env, err = Decode(ok(`{"meta": {"code": 400, "errorType": "param_error"}}`), false)
	require.NoError(t, err)
	assert.Equal(t, 400, env.Meta.Code)
	assert.Equal(t, "", env.Meta.ErrorDetail)
}

func TestDecodeNotifications(t *testing.T) {
	env, err := Decode(ok(`{"meta": {"code": 200}, "response": {}}`), false)
	require.NoError(t, err)
	assert.Nil(t, env.Notifications)

	env, err = Decode(ok(`{"meta": {"code": 200}, "response": {}, "notifications": []}`), false)
	require.NoError(t, err)
	assert.NotNil(t, env.Notifications)
	assert.Empty(t, env.Notifications)

	_, err = Decode(ok(`{"meta": {"code": 200}, "response": {}, "notifications": {}}`), false)
	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "notifications", pe.Key)
}

func TestDecodeProtocolErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		key  string
	}{
		{name: "array root", body: `[]`, key: ""},
		{name: "no meta", body: `{"response": {}}`, key: "meta"},
		{name: "meta not object", body: `{"meta": 200, "response": {}}`, key: "meta"},
		{name: "no code", body: `{"meta": {}, "response": {}}`, key: "meta.code"},
		{name: "code not numeric", body: `{"meta": {"code": "ok"}, "response": {}}`, key: "meta.code"},
		{name: "no response", body: `{"meta": {"code": 200}}`, key: "response"},
		{name: "null response", body: `{"meta": {"code": 200}, "response": null}`, key: "response"},
		{name: "response not object", body: `{"meta": {"code": 200}, "response": []}`, key: "response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Decode(ok(tt.body), false)
			assert.Nil(t, env)
			var pe *ProtocolError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.key, pe.Key)
		})
	}
}

func TestDecodeMalformedJSON(t *testing.T) {
	for _, body := range []string{`{"meta": `, `not json`, `{"meta": {"code": 200}} trailing`} {
		env, err := Decode(ok(body), false)
		assert.Nil(t, env)
		var de *DecodeError
		require.ErrorAs(t, err, &de, "body %q", body)
		assert.NotNil(t, de.Unwrap())
	}

	_, err := Decode(ok(`c({"meta": );`), true)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
}

func TestEnvelopeAccessors(t *testing.T) {
	env, err := Decode(ok(`{"meta": {"code": 200}, "response": {
		"venue": {"id": "v1"},
		"categories": [{"id": "c1"}],
		"defaultSetType": "all",
		"empty": null
	}}`), false)
	require.NoError(t, err)

	assert.True(t, env.Has("venue"))
	assert.False(t, env.Has("empty"))
	assert.False(t, env.Has("missing"))

	arr, err := env.Array("categories")
	require.NoError(t, err)
	assert.Len(t, arr, 1)

	s, err := env.String("defaultSetType")
	require.NoError(t, err)
	assert.Equal(t, "all", s)

	_, err = env.Object("categories")
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = env.Array("venue")
	assert.ErrorIs(t, err, ErrWrongType)

	_, err = env.Object("missing")
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = env.String("venue")
	var ce *mapping.CoercionError
	assert.ErrorAs(t, err, &ce)
}
