// Copyright 2026 go-sse Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !amd64

package sse

// Supported reports whether the host CPU provides the SSE feature set this
// package's register semantics assume. Off amd64 there is no SSE hardware;
// the pure Go operation bodies still compute the same lane results, but
// nothing maps the type onto a 128-bit register.
func Supported() bool {
	return false
}
