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

//go:build amd64

package sse

import "golang.org/x/sys/cpu"

// amd64 guarantees SSE and SSE2 as an architecture baseline, so the CPUID
// check here is expected to always pass. It is still read from the CPU
// rather than hardcoded so that Supported reports what the host actually
// offers.

var hasSSE2 bool

func init() {
	hasSSE2 = cpu.X86.HasSSE2
}

// Supported reports whether the host CPU provides the SSE feature set this
// package's register semantics assume. Callers that gate register-heavy
// paths at startup can use this as their one portable condition; the
// operations themselves never consult it.
func Supported() bool {
	return hasSSE2
}
