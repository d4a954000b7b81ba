// Package expr models directive bodies as a closed set of expression nodes
// and serializes them back into the parenthesised surface syntax.
//
// Назначение: отображение выражений (Token, Literal, Compound) в строку.
// Не делает: разбор синтаксиса, вычисление, экранирование HTML.
// Зависимости: только стандартная библиотека.
package expr
