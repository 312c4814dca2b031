// Command drsa is a thin cobra CLI facade over this module's induction
// pipeline: it reads an attribute schema and an object table through
// package dataio, builds a table.InformationTable, runs domlem.Induce (or
// InduceRulesWithCharacteristics), and writes the resulting rule set as
// RuleML through package ruleml. It contains no algorithmic logic of its
// own — every decision of substance lives in the packages it wires
// together.
package main
