// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2025, NASD Inc. All rights reserved.
// Use of this software is governed by the Business Source License included
// in the LICENSE file of this repository and at www.mariadb.com/bsl11.
//
// ANY USE OF THE LICENSED WORK IN VIOLATION OF THIS LICENSE WILL AUTOMATICALLY
// TERMINATE YOUR RIGHTS UNDER THIS LICENSE FOR THE CURRENT AND ALL OTHER
// VERSIONS OF THE LICENSED WORK.
//
// THIS LICENSE DOES NOT GRANT YOU ANY RIGHT IN ANY TRADEMARK OR LOGO OF
// LICENSOR OR ITS AFFILIATES (PROVIDED THAT YOU MAY USE A TRADEMARK OR LOGO OF
// LICENSOR AS EXPRESSLY REQUIRED BY THIS LICENSE).
//
// TO THE EXTENT PERMITTED BY APPLICABLE LAW, THE LICENSED WORK IS PROVIDED ON
// AN "AS IS" BASIS. LICENSOR HEREBY DISCLAIMS ALL WARRANTIES AND CONDITIONS,
// EXPRESS OR IMPLIED, INCLUDING (WITHOUT LIMITATION) WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, NON-INFRINGEMENT, AND
// TITLE.

package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// JSONValue returns a collections value codec that persists a hand-written
// state struct as canonical JSON. The name is surfaced in the collections
// schema the same way protobuf type names are.
func JSONValue[T any](name string) collcodec.ValueCodec[T] {
	return jsonValue[T]{name: name}
}

type jsonValue[T any] struct {
	name string
}

func (c jsonValue[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValue[T]) Decode(b []byte) (T, error) {
	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return value, fmt.Errorf("unable to decode %s: %w", c.name, err)
	}
	return value, nil
}

func (c jsonValue[T]) EncodeJSON(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValue[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValue[T]) Stringify(value T) string {
	return fmt.Sprintf("%v", value)
}

func (c jsonValue[T]) ValueType() string {
	return c.name
}
