package domain

import (
	"fmt"
	"io"
)

// Animal is the capability every variant shares. MakeSound is variant
// specific; Name and Sleep come from the embedded base.
type Animal interface {
	Name() string
	MakeSound(w io.Writer)
	Sleep(w io.Writer)
}

// animalBase carries state and behavior common to all variants. It does not
// implement MakeSound, so it cannot be used as an Animal on its own.
type animalBase struct {
	name string
}

func (a animalBase) Name() string {
	return a.name
}

func (a animalBase) Sleep(w io.Writer) {
	fmt.Fprintf(w, "%s is sleeping...\n", a.name)
}

type Dog struct {
	animalBase
	breed string
}

func NewDog(name, breed string) *Dog {
	return &Dog{
		animalBase: animalBase{name: name},
		breed:      breed,
	}
}

func (d *Dog) Breed() string {
	return d.breed
}

func (d *Dog) MakeSound(w io.Writer) {
	fmt.Fprintf(w, "%s says: Woof! Woof!\n", d.name)
}

type Cat struct {
	animalBase
}

func NewCat(name string) *Cat {
	return &Cat{animalBase: animalBase{name: name}}
}

func (c *Cat) MakeSound(w io.Writer) {
	fmt.Fprintf(w, "%s says: Meow! Meow!\n", c.name)
}

var (
	_ Animal = (*Dog)(nil)
	_ Animal = (*Cat)(nil)
)
