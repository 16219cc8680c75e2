// Code generated by ent, DO NOT EDIT.

package masterystate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/edubox/adapt/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldUserID, v))
}

// ConceptID applies equality check predicate on the "concept_id" field. It's identical to ConceptIDEQ.
func ConceptID(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldConceptID, v))
}

// PKnown applies equality check predicate on the "p_known" field. It's identical to PKnownEQ.
func PKnown(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldPKnown, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldContainsFold(FieldUserID, v))
}

// ConceptIDEQ applies the EQ predicate on the "concept_id" field.
func ConceptIDEQ(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldConceptID, v))
}

// ConceptIDNEQ applies the NEQ predicate on the "concept_id" field.
func ConceptIDNEQ(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldConceptID, v))
}

// ConceptIDIn applies the In predicate on the "concept_id" field.
func ConceptIDIn(vs ...string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldConceptID, vs...))
}

// ConceptIDNotIn applies the NotIn predicate on the "concept_id" field.
func ConceptIDNotIn(vs ...string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldConceptID, vs...))
}

// ConceptIDGT applies the GT predicate on the "concept_id" field.
func ConceptIDGT(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldConceptID, v))
}

// ConceptIDGTE applies the GTE predicate on the "concept_id" field.
func ConceptIDGTE(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldConceptID, v))
}

// ConceptIDLT applies the LT predicate on the "concept_id" field.
func ConceptIDLT(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldConceptID, v))
}

// ConceptIDLTE applies the LTE predicate on the "concept_id" field.
func ConceptIDLTE(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldConceptID, v))
}

// ConceptIDContains applies the Contains predicate on the "concept_id" field.
func ConceptIDContains(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldContains(FieldConceptID, v))
}

// ConceptIDHasPrefix applies the HasPrefix predicate on the "concept_id" field.
func ConceptIDHasPrefix(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldHasPrefix(FieldConceptID, v))
}

// ConceptIDHasSuffix applies the HasSuffix predicate on the "concept_id" field.
func ConceptIDHasSuffix(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldHasSuffix(FieldConceptID, v))
}

// ConceptIDEqualFold applies the EqualFold predicate on the "concept_id" field.
func ConceptIDEqualFold(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEqualFold(FieldConceptID, v))
}

// ConceptIDContainsFold applies the ContainsFold predicate on the "concept_id" field.
func ConceptIDContainsFold(v string) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldContainsFold(FieldConceptID, v))
}

// PKnownEQ applies the EQ predicate on the "p_known" field.
func PKnownEQ(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldPKnown, v))
}

// PKnownNEQ applies the NEQ predicate on the "p_known" field.
func PKnownNEQ(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldPKnown, v))
}

// PKnownIn applies the In predicate on the "p_known" field.
func PKnownIn(vs ...float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldPKnown, vs...))
}

// PKnownNotIn applies the NotIn predicate on the "p_known" field.
func PKnownNotIn(vs ...float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldPKnown, vs...))
}

// PKnownGT applies the GT predicate on the "p_known" field.
func PKnownGT(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldPKnown, v))
}

// PKnownGTE applies the GTE predicate on the "p_known" field.
func PKnownGTE(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldPKnown, v))
}

// PKnownLT applies the LT predicate on the "p_known" field.
func PKnownLT(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldPKnown, v))
}

// PKnownLTE applies the LTE predicate on the "p_known" field.
func PKnownLTE(v float64) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldPKnown, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.MasteryState {
	return predicate.MasteryState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MasteryState) predicate.MasteryState {
	return predicate.MasteryState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MasteryState) predicate.MasteryState {
	return predicate.MasteryState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MasteryState) predicate.MasteryState {
	return predicate.MasteryState(sql.NotPredicates(p))
}
