// ==============================================================================================
// FILE: evaluator/evaluator_integration_test.go
// ==============================================================================================
// PURPOSE: Integration tests for the evaluator.
//          Validates complex, multi-statement logic: recursion, closures, classes with
//          inheritance and super(), and comprehensions.
// ==============================================================================================

package evaluator

import "testing"

func TestIntegration_FunctionApplication(t *testing.T) {
	input := "def identity(x):\n    return x\nidentity(5)"
	testIntValue(t, testEval(t, input), 5)
}

func TestIntegration_Closures(t *testing.T) {
	input := "def new_adder(x):\n    def adder(y):\n        return x + y\n    return adder\nadd_two = new_adder(2)\nadd_two(3)"
	testIntValue(t, testEval(t, input), 5)
}

func TestIntegration_RecursiveFactorial(t *testing.T) {
	input := "def factorial(n):\n    if n == 0:\n        return 1\n    return n * factorial(n - 1)\nfactorial(5)"
	testIntValue(t, testEval(t, input), 120)
}

func TestIntegration_ClassInstantiationAndMethods(t *testing.T) {
	input := `
class Box:
    def __init__(self, width, height):
        self.width = width
        self.height = height
    def area(self):
        return self.width * self.height
b = Box(10, 20)
b.area()`
	testIntValue(t, testEval(t, input), 200)
}

func TestIntegration_CooperativeSuperCall(t *testing.T) {
	input := `
class Animal:
    def speak(self):
        return "generic noise"
class Dog(Animal):
    def speak(self):
        return super().speak() + " -> woof"
Dog().speak()`
	testStrValue(t, testEval(t, input), "generic noise -> woof")
}

func TestIntegration_DiamondInheritanceResolvesViaMRO(t *testing.T) {
	input := `
class O:
    def who(self):
        return "O"
class A(O):
    def who(self):
        return "A->" + super().who()
class B(O):
    def who(self):
        return "B->" + super().who()
class C(A, B):
    def who(self):
        return "C->" + super().who()
C().who()`
	testStrValue(t, testEval(t, input), "C->A->B->O")
}

func TestIntegration_PropertyGetterAndSetter(t *testing.T) {
	input := `
class Celsius:
    def __init__(self, value):
        self._value = value
    @property
    def value(self):
        return self._value
    @value.setter
    def value(self, new_value):
        self._value = new_value
c = Celsius(10)
c.value = 25
c.value`
	testIntValue(t, testEval(t, input), 25)
}

func TestIntegration_ListComprehension(t *testing.T) {
	input := "[x * x for x in range(5) if x % 2 == 0]"
	obj := testEval(t, input)
	result, ok := obj.(interface{ Inspect() string })
	if !ok {
		t.Fatalf("expected Inspect-able result")
	}
	if result.Inspect() != "[0, 4, 16]" {
		t.Errorf("unexpected comprehension result: %s", result.Inspect())
	}
}

func TestIntegration_StarredArgumentSpreading(t *testing.T) {
	input := `
def total(a, b, c):
    return a + b + c
args = [1, 2, 3]
total(*args)`
	testIntValue(t, testEval(t, input), 6)
}

func TestIntegration_TryExceptFinally(t *testing.T) {
	input := `
log = []
try:
    raise ValueError("bad")
except ValueError as e:
    log.append("caught")
finally:
    log.append("cleanup")
len(log)`
	testIntValue(t, testEval(t, input), 2)
}

func TestIntegration_ContextManagerProtocol(t *testing.T) {
	input := `
class Tracer:
    def __init__(self):
        self.entered = False
        self.exited = False
    def __enter__(self):
        self.entered = True
        return self
    def __exit__(self, exc_type, exc_val, exc_tb):
        self.exited = True
        return False
t = Tracer()
with t as ctx:
    pass
ctx.entered and ctx.exited`
	testBoolValue(t, testEval(t, input), true)
}
