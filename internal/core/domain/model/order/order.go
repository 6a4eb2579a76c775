package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

const (
	MinEstimatedMinutes = 1
	MaxEstimatedMinutes = 240
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Draft is what checkout submits for admission. Pricing is computed upstream,
// TotalAmount is taken as given.
type Draft struct {
	Items        []Item
	TotalAmount  kernel.Money
	PaymentID    string
	ClientIP     string
	CustomerID   *uint64
	IsDemo       bool
	DemoScenario string
}

// Validate checks the draft fields that do not depend on settings.
func (d Draft) Validate() error {
	var err error
	if len(d.Items) == 0 {
		err = errors.Join(err, errs.NewValueIsRequiredError("items"))
	}
	for _, item := range d.Items {
		err = errors.Join(err, item.Validate())
	}
	if !d.TotalAmount.IsPositive() {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"total amount", fmt.Errorf("%s is not greater than 0", d.TotalAmount)))
	}
	return err
}

// Order is the aggregate root of the fulfillment state machine.
//
// Order follows these invariants:
//   - status only moves along edges of the transition table
//   - kitchenID and courierID are set once, by the claiming operation
//   - refundedAmount never decreases and never exceeds totalAmount
//   - the last history entry always carries the current status
//
// Every mutating method validates first and changes nothing when it returns an error.
type Order struct {
	id     uint64
	status Status

	customerID *uint64
	clientIP   string
	items      []Item

	kitchenID *uint64
	courierID *uint64

	prepStartedAt            *time.Time
	prepEstimatedMinutes     *int
	deliveryStartedAt        *time.Time
	deliveryEstimatedMinutes *int

	totalAmount    kernel.Money
	refundedAmount kernel.Money
	refundID       string
	paymentID      string

	history History

	isDemo       bool
	demoScenario string

	statusChangedAt time.Time
	createdAt       time.Time
	updatedAt       time.Time
	version         uint64

	isConstructed bool
}

// NewOrder creates a Pending order from an admitted draft. The history starts
// with one Pending entry attributed to createdBy.
//
// Example:
//
//	item, _ := order.NewItem("Margherita", 2, kernel.MustMoney("9.50"))
//	o, err := order.NewOrder(order.Draft{
//	    Items:       []order.Item{item},
//	    TotalAmount: kernel.MustMoney("19.00"),
//	}, customer, time.Now())
func NewOrder(draft Draft, createdBy kernel.Actor, now time.Time) (*Order, error) {
	if err := errors.Join(createdBy.Validate(), draft.Validate()); err != nil {
		return nil, err
	}

	customerID := copyID(draft.CustomerID)
	if createdBy.Role() == kernel.RoleCustomer {
		customerID = createdBy.ID()
	}

	o := &Order{
		status:          Pending,
		customerID:      customerID,
		clientIP:        draft.ClientIP,
		items:           append([]Item(nil), draft.Items...),
		totalAmount:     draft.TotalAmount,
		refundedAmount:  kernel.ZeroMoney,
		paymentID:       draft.PaymentID,
		isDemo:          draft.IsDemo,
		demoScenario:    draft.DemoScenario,
		statusChangedAt: now,
		createdAt:       now,
		updatedAt:       now,
		isConstructed:   true,
	}
	o.history = History{}.Append(Pending, now, createdBy.ID(), "order created")
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() uint64 { return o.id }
func (o *Order) Status() Status { return o.status }
func (o *Order) CustomerID() *uint64 { return copyID(o.customerID) }
func (o *Order) ClientIP() string { return o.clientIP }
func (o *Order) Items() []Item { return append([]Item(nil), o.items...) }
func (o *Order) KitchenID() *uint64 { return copyID(o.kitchenID) }
func (o *Order) CourierID() *uint64 { return copyID(o.courierID) }
func (o *Order) PrepStartedAt() *time.Time { return copyTime(o.prepStartedAt) }
func (o *Order) PrepEstimatedMinutes() *int { return copyInt(o.prepEstimatedMinutes) }
func (o *Order) DeliveryStartedAt() *time.Time { return copyTime(o.deliveryStartedAt) }
func (o *Order) DeliveryEstimatedMinutes() *int { return copyInt(o.deliveryEstimatedMinutes) }
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }
func (o *Order) RefundedAmount() kernel.Money { return o.refundedAmount }
func (o *Order) RefundID() string { return o.refundID }
func (o *Order) PaymentID() string { return o.paymentID }
func (o *Order) History() History { return o.history }
func (o *Order) IsDemo() bool { return o.isDemo }
func (o *Order) DemoScenario() string { return o.demoScenario }
func (o *Order) StatusChangedAt() time.Time { return o.statusChangedAt }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }
func (o *Order) Version() uint64 { return o.version }
func (o *Order) RefundableAmount() kernel.Money { return o.totalAmount.Sub(o.refundedAmount) }
func (o *Order) IsFullyRefunded() bool { return !o.refundedAmount.LessThan(o.totalAmount) }

// MarkPersisted records the identity and version assigned by the store.
func (o *Order) MarkPersisted(id, version uint64) {
	o.id = id
	o.version = version
}

// Confirm moves Pending -> Confirmed after payment capture. A non-empty
// paymentID replaces the stored payment reference.
func (o *Order) Confirm(actor kernel.Actor, paymentID string, now time.Time) error {
	if err := o.status.ValidateTransition(Confirmed); err != nil {
		return err
	}
	if paymentID != "" {
		o.paymentID = paymentID
	}
	o.moveTo(Confirmed, actor, now, "payment captured")
	return nil
}

// StartPreparing claims the order for a kitchen actor: Confirmed -> Preparing.
// Terminal orders always report InvalidTransition. Otherwise a kitchen slot
// that is already taken wins over the status check so that the loser of a
// race reports AlreadyAssigned.
func (o *Order) StartPreparing(actor kernel.Actor, estimatedMinutes int, now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionError(o.status.String(), Preparing.String(), "order is completed")
	}
	actorID := actor.ID()
	if actorID == nil {
		return errs.NewValueIsRequiredError("kitchen actor id")
	}
	if err := ValidateEstimatedMinutes(estimatedMinutes); err != nil {
		return err
	}
	if o.kitchenID != nil {
		return errs.NewAlreadyAssignedError("kitchen", "already claimed by another kitchen actor")
	}
	if o.status != Confirmed {
		return errs.NewInvalidTransitionError(o.status.String(), Preparing.String(), "not ready for preparation")
	}

	o.kitchenID = actorID
	o.prepStartedAt = &now
	o.prepEstimatedMinutes = &estimatedMinutes
	o.moveTo(Preparing, actor, now, fmt.Sprintf("preparation started, estimated %d minutes", estimatedMinutes))
	return nil
}

// MarkReady moves Preparing -> Ready.
func (o *Order) MarkReady(actor kernel.Actor, now time.Time) error {
	if err := o.status.ValidateTransition(Ready); err != nil {
		return err
	}
	o.moveTo(Ready, actor, now, "")
	return nil
}

// Remake sends a Ready order back to the kitchen. The kitchen assignee is kept
// and the preparation clock restarts.
func (o *Order) Remake(actor kernel.Actor, reason string, now time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("remake reason")
	}
	if o.status != Ready {
		return errs.NewInvalidTransitionError(o.status.String(), Preparing.String(), "only ready orders can be remade")
	}
	o.prepStartedAt = &now
	o.moveTo(Preparing, actor, now, "remake: "+reason)
	return nil
}

// UpdatePrepTime changes the preparation estimate of a Preparing order.
// The status is unchanged; an audit entry records the new estimate.
func (o *Order) UpdatePrepTime(actor kernel.Actor, minutes int, now time.Time) error {
	if err := ValidateEstimatedMinutes(minutes); err != nil {
		return err
	}
	if o.status != Preparing {
		return errs.NewInvalidTransitionError(o.status.String(), o.status.String(), "order is not in preparation")
	}
	o.prepEstimatedMinutes = &minutes
	o.record(actor, now, fmt.Sprintf("prep time updated to %d minutes", minutes))
	return nil
}

// AcceptDelivery claims a Ready order for a courier: Ready -> Delivering.
// Slot and status are checked in the same order as StartPreparing.
func (o *Order) AcceptDelivery(actor kernel.Actor, estimatedMinutes int, now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionError(o.status.String(), Delivering.String(), "order is completed")
	}
	actorID := actor.ID()
	if actorID == nil {
		return errs.NewValueIsRequiredError("courier actor id")
	}
	if err := ValidateEstimatedMinutes(estimatedMinutes); err != nil {
		return err
	}
	if o.courierID != nil {
		return errs.NewAlreadyAssignedError("courier", "already assigned to another courier")
	}
	if o.status != Ready {
		return errs.NewInvalidTransitionError(o.status.String(), Delivering.String(), "not ready for delivery")
	}

	o.courierID = actorID
	o.deliveryStartedAt = &now
	o.deliveryEstimatedMinutes = &estimatedMinutes
	o.moveTo(Delivering, actor, now, fmt.Sprintf("delivery accepted, estimated %d minutes", estimatedMinutes))
	return nil
}

// MarkDelivered moves Delivering -> Delivered. Only an administrator or the
// recorded courier may do so.
func (o *Order) MarkDelivered(actor kernel.Actor, now time.Time) error {
	if err := o.status.ValidateTransition(Delivered); err != nil {
		return err
	}
	if err := o.checkCourierOwnership(actor, "mark delivered"); err != nil {
		return err
	}
	o.moveTo(Delivered, actor, now, "")
	return nil
}

// UpdateDeliveryTime changes the delivery estimate of a Delivering order.
func (o *Order) UpdateDeliveryTime(actor kernel.Actor, minutes int, now time.Time) error {
	if o.status != Delivering {
		return errs.NewInvalidTransitionError(o.status.String(), o.status.String(), "order is not out for delivery")
	}
	if err := o.checkCourierOwnership(actor, "update delivery time"); err != nil {
		return err
	}
	if err := ValidateEstimatedMinutes(minutes); err != nil {
		return err
	}
	o.deliveryEstimatedMinutes = &minutes
	o.record(actor, now, fmt.Sprintf("delivery time updated to %d minutes", minutes))
	return nil
}

// Cancel moves any non-terminal order to Cancelled.
func (o *Order) Cancel(actor kernel.Actor, reason string, now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionError(o.status.String(), Cancelled.String(), "cannot cancel completed order")
	}
	if err := o.status.ValidateTransition(Cancelled); err != nil {
		return err
	}
	note := "cancelled"
	if reason != "" {
		note = "cancelled: " + reason
	}
	o.moveTo(Cancelled, actor, now, note)
	return nil
}

// PlanRefund checks the refund preconditions and resolves the amount to refund.
// A nil amount means the full remaining refundable amount.
func (o *Order) PlanRefund(amount *kernel.Money) (kernel.Money, error) {
	if o.paymentID == "" {
		return kernel.Money{}, errs.NewRefundInvalidError("order has no payment reference")
	}
	if o.isDemo {
		return kernel.Money{}, errs.NewRefundInvalidError("demo orders cannot be refunded")
	}
	if o.IsFullyRefunded() {
		return kernel.Money{}, errs.NewRefundInvalidError("order is already fully refunded")
	}

	refundable := o.RefundableAmount()
	resolved := refundable
	if amount != nil {
		resolved = *amount
	}
	if !resolved.IsPositive() {
		return kernel.Money{}, errs.NewRefundInvalidError("refund amount must be greater than 0")
	}
	if resolved.GreaterThan(refundable) {
		return kernel.Money{}, errs.NewRefundInvalidError(
			fmt.Sprintf("refund amount %s exceeds refundable amount %s", resolved, refundable))
	}
	if resolved.Equal(refundable) && o.status == Delivered {
		return kernel.Money{}, errs.NewRefundInvalidError("delivered orders can only be partially refunded")
	}
	return resolved, nil
}

// ApplyRefund books a refund confirmed by the payment gateway. The order
// becomes Cancelled once the total amount is refunded.
func (o *Order) ApplyRefund(actor kernel.Actor, amount kernel.Money, refundID string, now time.Time) error {
	if refundID == "" {
		return errs.NewValueIsRequiredError("refund id")
	}
	if _, err := o.PlanRefund(&amount); err != nil {
		return err
	}

	o.refundedAmount = o.refundedAmount.Add(amount)
	o.refundID = refundID
	note := fmt.Sprintf("refunded %s (refund id %s)", amount, refundID)

	if o.IsFullyRefunded() && o.status != Cancelled {
		o.moveTo(Cancelled, actor, now, note+", fully refunded")
		return nil
	}
	o.record(actor, now, note)
	return nil
}

// ValidateEstimatedMinutes enforces the accepted estimate range.
func ValidateEstimatedMinutes(minutes int) error {
	if minutes < MinEstimatedMinutes || minutes > MaxEstimatedMinutes {
		return errs.NewValueIsOutOfRangeError("estimated minutes", minutes, MinEstimatedMinutes, MaxEstimatedMinutes)
	}
	return nil
}

func (o *Order) checkCourierOwnership(actor kernel.Actor, action string) error {
	if actor.IsAdmin() || actor.Is(o.courierID) {
		return nil
	}
	return errs.NewUnauthorizedError(action, "not assigned to this delivery")
}

func (o *Order) moveTo(status Status, actor kernel.Actor, now time.Time, note string) {
	o.status = status
	o.statusChangedAt = now
	o.record(actor, now, note)
}

func (o *Order) record(actor kernel.Actor, now time.Time, note string) {
	o.history = o.history.Append(o.status, now, actor.ID(), note)
	o.updatedAt = now
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
