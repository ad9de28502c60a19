// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// The store's native identifier is a bson.ObjectID; clients only ever see
// its 24-hex-digit encoding. All single-document operations validate the
// encoded form before touching storage so a malformed identifier surfaces
// as a client error, never a storage error.

// EncodeID converts a native identifier into its opaque client form.
func EncodeID(id bson.ObjectID) string {
	return id.Hex()
}

// DecodeID parses a client identifier back into the native form. It fails
// with ErrInvalidID when the string is not a 24-digit hex identifier.
func DecodeID(s string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

// ValidID reports whether s is a well-formed encoded identifier.
func ValidID(s string) bool {
	_, err := bson.ObjectIDFromHex(s)
	return err == nil
}
