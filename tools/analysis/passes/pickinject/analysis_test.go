// Copyright (c) 2024 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package pickinject

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"
)

func TestAnalyzer(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), Analyzer, "bad", "cycle")
}

func TestAnalyzerResult(t *testing.T) {
	results := analysistest.Run(t, analysistest.TestData(), Analyzer, "valid")
	require.Len(t, results, 1)
	res, ok := results[0].Result.(*Result)
	require.True(t, ok, "unexpected result type %T", results[0].Result)

	byName := make(map[string]*Injectable)
	var names []string
	for _, inj := range res.Injectables {
		byName[inj.Name()] = inj
		names = append(names, inj.Name())
	}
	assert.Equal(t, []string{"Activity", "Base", "Clock", "Thermosiphon", "Value"}, names)

	typeString := func(t types.Type) string {
		return types.TypeString(t, types.RelativeTo(res.Pkg))
	}

	t.Run("Clock", func(t *testing.T) {
		clock := byName["Clock"]
		assert.Equal(t, "app", clock.Scope)
		assert.True(t, clock.Singleton)
		assert.True(t, clock.Releasable)
		assert.True(t, clock.HasFactory())
		assert.False(t, clock.HasInjector())
		assert.Equal(t, "*Clock", typeString(clock.FactoryType()))

		ctor := clock.Constructor
		require.NotNil(t, ctor)
		assert.Equal(t, "NewClock", ctor.Func.Name())
		assert.True(t, ctor.ReturnsPointer())
		assert.False(t, ctor.ReturnsError)
		require.Len(t, ctor.Params, 1)
		assert.Equal(t, "zone", ctor.Params[0].Name)
		assert.Equal(t, "string", typeString(ctor.Params[0].Type))
		assert.Equal(t, "tz", ctor.Params[0].Qualifier)
		assert.Equal(t, Instance, ctor.Params[0].Kind)
	})

	t.Run("Thermosiphon", func(t *testing.T) {
		ctor := byName["Thermosiphon"].Constructor
		require.NotNil(t, ctor)
		assert.True(t, ctor.ReturnsError)
		require.Len(t, ctor.Params, 2)
		assert.Equal(t, "*Clock", typeString(ctor.Params[0].Type))
		assert.Equal(t, Lazy, ctor.Params[1].Kind)
		assert.Equal(t, "Logger", typeString(ctor.Params[1].Type))
	})

	t.Run("Activity", func(t *testing.T) {
		activity := byName["Activity"]
		assert.Nil(t, activity.Constructor)
		assert.True(t, activity.HasFactory())
		assert.True(t, activity.HasInjector())
		assert.Equal(t, "*Activity", typeString(activity.FactoryType()))

		require.NotNil(t, activity.Embedded)
		assert.Equal(t, "Base", activity.Embedded.Field)
		assert.False(t, activity.Embedded.Pointer)

		require.Len(t, activity.Fields, 2)
		pump, region := activity.Fields[0], activity.Fields[1]
		assert.Equal(t, "Pump", pump.Name)
		assert.Equal(t, Provider, pump.Kind)
		assert.Equal(t, "*Thermosiphon", typeString(pump.Type))
		assert.Equal(t, "Region", region.Name)
		assert.Equal(t, "region", region.Qualifier)
	})

	t.Run("Value", func(t *testing.T) {
		value := byName["Value"]
		require.NotNil(t, value.Constructor)
		assert.False(t, value.Constructor.ReturnsPointer())
		assert.Equal(t, "Value", typeString(value.FactoryType()))
		assert.True(t, value.HasInjector())
		require.Len(t, value.Constructor.Params, 1)
		assert.Empty(t, value.Constructor.Params[0].Name)
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Instance", Instance.String())
	assert.Equal(t, "Provider", Provider.String())
	assert.Equal(t, "Lazy", Lazy.String())
}
