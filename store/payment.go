package store

import (
	"github.com/biggrade/biggrade-api/schema"
)

// SendPaymentInstructions stores how the student should pay. Instructions
// are sent once per session.
func (s *BigGradeStore) SendPaymentInstructions(helpID, responderEmail, instructions string, msg *schema.SessionMessage) (*schema.HelpRequest, error) {
	return s.paymentStep(helpID,
		"responder_email = ? AND payment_instructions_sent = ?",
		[]interface{}{responderEmail, false},
		map[string]interface{}{
			"payment_instructions":      instructions,
			"payment_instructions_sent": true,
		},
		msg)
}

// MarkStudentPaid records the student's claim that the payment was sent
func (s *BigGradeStore) MarkStudentPaid(helpID, authorEmail string, msg *schema.SessionMessage) (*schema.HelpRequest, error) {
	return s.paymentStep(helpID,
		"author_email = ? AND payment_instructions_sent = ?",
		[]interface{}{authorEmail, true},
		map[string]interface{}{"student_paid": true},
		msg)
}

// ConfirmPaymentReceived records the helper's confirmation, which lifts the
// payment gate
func (s *BigGradeStore) ConfirmPaymentReceived(helpID, responderEmail string, msg *schema.SessionMessage) (*schema.HelpRequest, error) {
	return s.paymentStep(helpID,
		"responder_email = ? AND student_paid = ?",
		[]interface{}{responderEmail, true},
		map[string]interface{}{"tutor_confirmed_payment": true},
		msg)
}

func (s *BigGradeStore) paymentStep(helpID, where string, args []interface{}, updates map[string]interface{}, msg *schema.SessionMessage) (*schema.HelpRequest, error) {
	err := s.transition(helpID,
		"status IN (?) AND compensation_type = ? AND "+where,
		append([]interface{}{liveStatuses, schema.CompensationPaid}, args...),
		updates, msg, nil)
	if err == errNoRows {
		return nil, ErrTransitionConflict
	}
	if err != nil {
		return nil, err
	}

	return s.GetHelp(helpID)
}
