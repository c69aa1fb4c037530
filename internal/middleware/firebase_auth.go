package middleware

import (
	"context"
	"encoding/base64"
	"encoding/json"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// InitFirebase initializes the Firebase Admin SDK from environment-shaped
// credentials (the private key arrives base64-encoded so it survives .env
// files without newline mangling).
func InitFirebase(projectID, privateKeyB64, clientEmail string) (*firebase.App, error) {
	privateKey, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, err
	}

	credentialsJSON := map[string]interface{}{
		"type":         "service_account",
		"project_id":   projectID,
		"private_key":  string(privateKey),
		"client_email": clientEmail,
	}

	app, err := firebase.NewApp(context.Background(), nil, option.WithCredentialsJSON(mustMarshalJSON(credentialsJSON)))
	if err != nil {
		return nil, err
	}
	return app, nil
}

// NewAuthClient returns the Auth client used to verify Firebase ID tokens
func NewAuthClient(app *firebase.App) (*auth.Client, error) {
	return app.Auth(context.Background())
}

// mustMarshalJSON is a helper to marshal JSON or panic
func mustMarshalJSON(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}
