// Package gofkit is a worked catalogue of the classic object-oriented
// design patterns — creational, structural and behavioural — each one
// rebuilt as a small, closed, self-tested Go package.
//
// 🚀 What is gofkit?
//
//	A teaching library, not a framework. Every subpackage holds exactly
//	one pattern:
//		• Creational: factorymethod, abstractfactory, builder, prototype, singleton
//		• Structural: adapter, bridge, composite, decorator, facade, flyweight, proxy
//		• Behavioural: chain, command, iterator, mediator, observer, state,
//		  strategy, templatemethod
//
// ✨ Why read gofkit?
//
//   - One pattern per package – no cross-package plumbing to untangle
//   - Prose first – every doc.go explains theory, participants and trade-offs
//   - Tested claims – each example's behaviour is pinned by its own unit test
//   - Go-native – interfaces, explicit errors and composition where the
//     textbook reached for inheritance
//
// The packages never import each other. Pick any one, read its doc.go,
// its hundred-odd lines of code, and its test, and you have the whole
// pattern.
//
// Quick taste (factory method):
//
//	f := factorymethod.SedanFactory{}
//	v := f.NewVehicle()
//	fmt.Println(v.Kind()) // "sedan"
//
// Installation:
//
//	go get github.com/patternsmith/gofkit
package gofkit
