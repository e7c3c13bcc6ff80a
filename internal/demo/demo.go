package demo

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"oop-pillars/internal/domain"
)

const (
	banner = `╔════════════════════════════════════════════════════════════╗
║     FOUR PILLARS OF JAVA OOP - INTERVIEW PREPARATION      ║
╚════════════════════════════════════════════════════════════╝`

	summary = `╔════════════════════════════════════════════════════════════╗
║ QUICK INTERVIEW SUMMARY                                    ║
╠════════════════════════════════════════════════════════════╣
║ 1. ABSTRACTION   → Hide implementation, show functionality ║
║ 2. INHERITANCE   → Code reusability, IS-A relationship    ║
║ 3. ENCAPSULATION → Data hiding, controlled access         ║
║ 4. POLYMORPHISM  → One interface, many forms              ║
╚════════════════════════════════════════════════════════════╝`
)

const sectionRule = "─────────────────────────────────────────────────────────"

// Run writes the full four-pillars walkthrough to w. The sequence is fixed:
// every run produces identical output.
func Run(w io.Writer) {
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)

	dog := abstraction(w)
	inheritance(w, dog)
	encapsulation(w)
	polymorphism(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, summary)
}

// Transcript returns what Run writes.
func Transcript() string {
	var sb strings.Builder
	Run(&sb)
	return sb.String()
}

func section(w io.Writer, title string, points ...string) {
	fmt.Fprintf(w, "┌%s┐\n", sectionRule)
	fmt.Fprintf(w, "│%-57s│\n", " "+title)
	fmt.Fprintf(w, "└%s┘\n", sectionRule)
	fmt.Fprintln(w, "Key Points:")
	for _, p := range points {
		fmt.Fprintf(w, "  ✓ %s\n", p)
	}
	fmt.Fprintln(w)
}

func abstraction(w io.Writer) *domain.Dog {
	section(w, "1. ABSTRACTION",
		"Hides implementation details, shows only functionality",
		"Abstract class cannot be instantiated",
		"Abstract methods must be implemented by child classes",
	)

	dog := domain.NewDog("Buddy", "Golden Retriever")
	cat := domain.NewCat("Whiskers")

	dog.MakeSound(w)
	cat.MakeSound(w)
	dog.Sleep(w)

	return dog
}

func inheritance(w io.Writer, dog *domain.Dog) {
	fmt.Fprintln(w)
	section(w, "2. INHERITANCE",
		"Establishes IS-A relationship (Dog IS-A Animal)",
		"Promotes code reusability",
		"Child inherits all non-private members of parent",
	)

	fmt.Fprintf(w, "%s is a %s\n", dog.Name(), dog.Breed())
	fmt.Fprintln(w, "Dog class inherited:")
	fmt.Fprintln(w, "  - 'name' field from Animal")
	fmt.Fprintln(w, "  - 'sleep()' method from Animal")
	fmt.Fprintln(w, "  - Must implement 'makeSound()' abstract method")
}

func encapsulation(w io.Writer) {
	fmt.Fprintln(w)
	section(w, "3. ENCAPSULATION",
		"Data hiding using private access modifier",
		"Controlled access via public getter/setter methods",
		"Provides validation and security",
	)

	account := domain.NewBankAccount("ACC123", decimal.NewFromFloat(1000.0))

	fmt.Fprintf(w, "Account: %s\n", account.AccountNumber())
	fmt.Fprintf(w, "Initial Balance: $%s\n", domain.FormatAmount(account.Balance()))
	account.Deposit(w, decimal.NewFromInt(500))
	account.Withdraw(w, decimal.NewFromInt(200))
	account.Withdraw(w, decimal.NewFromInt(2000))
}

func polymorphism(w io.Writer) {
	fmt.Fprintln(w)
	section(w, "4. POLYMORPHISM",
		"Compile-time: Method Overloading (same name, diff params)",
		"Runtime: Method Overriding (parent-child relationship)",
	)

	fmt.Fprintln(w, "A) Compile-time Polymorphism (Method Overloading):")
	var calc domain.Calculator
	fmt.Fprintf(w, "Result: %d\n", calc.AddInts(w, 5, 3))
	fmt.Fprintf(w, "Result: %s\n", domain.FormatDouble(calc.AddFloats(w, 5.5, 3.2)))
	fmt.Fprintf(w, "Result: %d\n", calc.AddInts3(w, 1, 2, 3))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "B) Runtime Polymorphism (Method Overriding):")
	fmt.Fprintln(w, "Parent reference, Child object:")

	var animal1 domain.Animal = domain.NewDog("Max", "Labrador")
	var animal2 domain.Animal = domain.NewCat("Mittens")

	animal1.MakeSound(w)
	animal2.MakeSound(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Note: Method called depends on OBJECT type, not reference type")
}
