// Copyright 2025 Poiesic Systems
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


package mock

import (
	"context"

	"github.com/poiesic/retrace/ai"
)

// Answerer is a test double for ai.Answerer. Set AnswerFunc to control
// behavior; the zero value returns the no-information sentinel.
type Answerer struct {
	AnswerFunc func(ctx context.Context, sessionContent, question string) (string, error)
}

var _ ai.Answerer = (*Answerer)(nil)

// Answer delegates to AnswerFunc when set.
func (m *Answerer) Answer(ctx context.Context, sessionContent, question string) (string, error) {
	if m.AnswerFunc != nil {
		return m.AnswerFunc(ctx, sessionContent, question)
	}
	return ai.NoInformationSentinel, nil
}

// Fixed returns an Answerer that always replies with text.
func Fixed(text string) *Answerer {
	return &Answerer{
		AnswerFunc: func(context.Context, string, string) (string, error) {
			return text, nil
		},
	}
}
