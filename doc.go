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

// Package pick is a scoped dependency injection runtime.
//
// Objects are obtained from scopes. A scope is a named node in a tree of
// scopes, the scope graph, and it holds three things: the bindings installed
// into it, the singletons it has cached, and the scope annotations it
// supports. Resolving a key from a scope looks at that scope and then at each
// of its ancestors, so a child sees everything its parents see but not the
// other way around.
//
// # Scopes
//
// Scopes are opened by name on a Graph. Names are any comparable value.
//
//	g := pick.NewGraph()
//	app, err := g.Open("app")
//	activity, err := g.Open("app", "activity")
//
// Opening a chain of names links each name to the one before it. Closing a
// scope closes its whole subtree, drops every cached instance in it and runs
// the hooks registered with Scope.OnClose. Package-level functions such as
// OpenScope and CloseScope operate on a process-wide default graph.
//
// # Bindings
//
// A Module is a list of bindings. Installing a module into a scope makes its
// bindings visible to the scope and its descendants.
//
//	m := pick.NewModule()
//	pick.Bind[Logger](m).To(pick.KeyOf[*zapLogger]()).Singleton()
//	pick.Bind[Config](m).ToInstance(cfg)
//	if err := app.InstallModules(m); err != nil {
//		...
//	}
//
// The nearest binding wins: a binding installed in a descendant hides one
// for the same key installed in an ancestor.
//
// # Factories
//
// Types that have no binding are built by a Factory registered for their
// type. Factories and member injectors are normally produced by pickgen from
// annotated source and register themselves from init functions, so the
// runtime never inspects struct fields or constructor signatures.
//
// A factory may name a scope annotation. Its instances are then created in,
// and cached by, the nearest scope that supports the annotation, and their
// dependencies are resolved from that scope.
//
// # Resolving
//
//	clock, err := pick.GetInstance[*Clock](activity)
//	lazy, err := pick.GetLazy[*Clock](activity)
//	provider, err := pick.GetProvider[*Clock](activity)
//
// A Provider resolves again on every Get. A Lazy resolves on its first
// successful Get and returns the same value afterwards.
//
// All operations are safe for concurrent use. Singletons are built at most
// once per scope even when requested from many goroutines at the same time.
package pick
