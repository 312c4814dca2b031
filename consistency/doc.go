// Package consistency implements the object consistency measures used by
// variable-consistency approximations (package approximation) and by rule
// induction as an evaluator and a quality statistic.
//
// A Measure is a function of an object and a union that returns a real
// number together with a declared Sense (gain: higher is more consistent,
// cost: lower is more consistent). Satisfies compares a measured value
// against a threshold according to the measure's sense.
//
// The distinguished measure, Epsilon, counts how much decision evidence in
// an object's "counting cone" contradicts the union it is tested against;
// it is a cost measure, 0 meaning fully consistent and 1 the worst case.
package consistency
