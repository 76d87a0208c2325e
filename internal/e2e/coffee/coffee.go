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

// Package coffee is an annotated program whose artifacts are generated by
// pickgen. It exercises the runtime the way applications use it.
package coffee

import (
	"sync/atomic"

	"go.uber.org/pick"
)

//go:generate go run go.uber.org/pick/cmd/pickgen .

// Built counts constructor calls.
var Built struct {
	Clocks  atomic.Int64
	Heaters atomic.Int64
}

// Logger records brewing activity.
type Logger interface {
	Log(msg string)
}

// Clock is shared by everything opened below an application scope.
//
//pick:scope app
//pick:singleton
type Clock struct {
	ID int64
}

//pick:inject
func NewClock() *Clock {
	return &Clock{ID: Built.Clocks.Add(1)}
}

// Heater heats water.
type Heater interface {
	On()
	Off()
	IsHot() bool
}

// ElectricHeater is the Heater bound by Module.
type ElectricHeater struct {
	Clock *Clock `inject:""`

	heating bool
}

var _ Heater = (*ElectricHeater)(nil)

//pick:inject
func NewElectricHeater() *ElectricHeater {
	Built.Heaters.Add(1)
	return &ElectricHeater{}
}

func (h *ElectricHeater) On()         { h.heating = true }
func (h *ElectricHeater) Off()        { h.heating = false }
func (h *ElectricHeater) IsHot() bool { return h.heating }

// Pump moves water through a Heater.
type Pump interface {
	Pump() bool
}

// Thermosiphon is the Pump bound by Module. It only pumps hot water.
type Thermosiphon struct {
	heater Heater
}

var _ Pump = (*Thermosiphon)(nil)

//pick:inject
func NewThermosiphon(heater Heater) *Thermosiphon {
	return &Thermosiphon{heater: heater}
}

func (p *Thermosiphon) Pump() bool { return p.heater.IsHot() }

// CoffeeMaker brews with a heater built on first use.
type CoffeeMaker struct {
	Heater pick.Lazy[Heater]   `inject:""`
	Pump   pick.Provider[Pump] `inject:""`
	Log    Logger              `inject:""`
}

// Brew heats, pumps and logs a cup.
func (m *CoffeeMaker) Brew() error {
	h, err := m.Heater.Get()
	if err != nil {
		return err
	}
	h.On()
	defer h.Off()

	p, err := m.Pump.Get()
	if err != nil {
		return err
	}
	if p.Pump() {
		m.Log.Log("[_]P coffee! [_]P")
	}
	return nil
}

// Base carries what every order needs.
type Base struct {
	Clock *Clock `inject:""`
}

// Order is injected in place by the activity taking it.
type Order struct {
	Base

	Maker *CoffeeMaker `inject:""`
	Size  string       `inject:"size"`
}

// Module binds the interfaces of this package to their implementations.
// The heater is shared by everything resolving from the scope it is
// installed in.
func Module() *pick.Module {
	m := pick.NewModule()
	pick.Bind[Heater](m).To(pick.KeyOf[*ElectricHeater]()).Singleton()
	pick.Bind[Pump](m).To(pick.KeyOf[*Thermosiphon]())
	return m
}
