package common

import (
	"crs/src/config"
	"crs/src/db"
	"crs/src/lib"
	"crs/src/lib/mailer"
	"crs/src/models"
	"crs/src/types"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrReservationNotFound      = errors.New("Reservation not found")
	ErrSeatsTaken               = errors.New("One or more seats are already reserved")
	ErrUnsupportedPaymentMethod = errors.New("Unsupported payment method")
)

type UpdateReservationInput struct {
	ReservationID uint
	UserID        uint
	ShowtimeID    uint
	SeatIDs       []uint
	PaymentMethod types.PaymentMethod
	PaymentToken  string
}

type UpdateReservationResult struct {
	Message       string              `json:"message"`
	ReservationID uint                `json:"reservation_id"`
	PaymentStatus types.PaymentStatus `json:"payment_status"`
	Seats         []string            `json:"seats"`
	TotalAmount   float64             `json:"total_amount"`
}

// lockSeats narrows a seat query to unreserved rows, taking row locks
// where the engine supports them. sqlite serializes writers on its own.
func lockSeats(tx *gorm.DB) *gorm.DB {
	q := tx.Model(&models.Seat{})
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q
}

// CreateReservation opens a pending reservation for the caller on a
// showtime. Seats and payment are attached later by UpdateReservation.
func CreateReservation(userID, showtimeID uint) (uint, int, error) {
	d := db.GetDb()
	var reservation models.Reservation
	err := d.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.
			Model(&models.Showtime{}).
			Where("id = ?", showtimeID).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		reservation = models.Reservation{
			UserID:     userID,
			ShowtimeID: showtimeID,
			Status:     types.RESERVATION_PENDING,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, http.StatusNotFound, errors.New("Resource not found")
		}
		return 0, http.StatusBadRequest, err
	}
	return reservation.ID, http.StatusCreated, nil
}

// UpdateReservation is the booking transaction: it re-points the
// reservation, locks and claims the requested seats, upserts the
// payment, branches on the payment method and commits the whole set
// atomically. Any failure rolls every mutation back.
func UpdateReservation(in *UpdateReservationInput) (*UpdateReservationResult, int, error) {
	d := db.GetDb()

	var reservation models.Reservation
	if err := d.
		Model(&models.Reservation{}).
		Where(&models.Reservation{ID: in.ReservationID, UserID: in.UserID}).
		First(&reservation).
		Error; err != nil {
		return nil, http.StatusNotFound, ErrReservationNotFound
	}

	method := in.PaymentMethod
	if method == "" {
		method = types.PAYMENT_METHOD_CREDIT_CARD
	}

	var (
		seats             []models.Seat
		seatNumbers       []string
		totalAmount       float64
		paymentStatus     types.PaymentStatus
		reservationStatus types.ReservationStatus
	)
	err := d.Transaction(func(tx *gorm.DB) error {
		if err := lockSeats(tx).
			Where("id IN ?", in.SeatIDs).
			Where("is_reserved = ?", false).
			Find(&seats).
			Error; err != nil {
			return err
		}
		if len(seats) != len(in.SeatIDs) {
			return ErrSeatsTaken
		}
		totalAmount = float64(len(seats)) * config.SEAT_PRICE

		if err := tx.
			Model(&models.Reservation{}).
			Where(&models.Reservation{ID: reservation.ID}).
			Update("showtime_id", in.ShowtimeID).
			Error; err != nil {
			return err
		}
		// Seats dropped from the reservation go back on sale before the
		// new set replaces them.
		var previous []models.Seat
		if err := tx.Model(&reservation).Association("Seats").Find(&previous); err != nil {
			return err
		}
		if len(previous) > 0 {
			previousIDs := make([]uint, 0, len(previous))
			for _, seat := range previous {
				previousIDs = append(previousIDs, seat.ID)
			}
			if err := tx.
				Model(&models.Seat{}).
				Where("id IN ?", previousIDs).
				Update("is_reserved", false).
				Error; err != nil {
				return err
			}
		}

		seatRefs := make([]*models.Seat, len(seats))
		for i := range seats {
			seatRefs[i] = &seats[i]
			seatNumbers = append(seatNumbers, seats[i].SeatNumber)
		}
		if err := tx.Model(&reservation).Association("Seats").Replace(seatRefs); err != nil {
			return err
		}

		var payment models.Payment
		err := tx.
			Where(&models.Payment{ReservationID: reservation.ID}).
			First(&payment).
			Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			payment = models.Payment{
				UserID:        in.UserID,
				ReservationID: reservation.ID,
				Amount:        totalAmount,
				PaymentMethod: method,
				Status:        types.PAYMENT_PENDING,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		} else {
			// Reset to pending before branching so a retried payment
			// never carries a stale status forward.
			if err := tx.
				Model(&payment).
				Updates(map[string]any{
					"amount":         totalAmount,
					"payment_method": method,
					"status":         types.PAYMENT_PENDING,
				}).
				Error; err != nil {
				return err
			}
		}

		switch method {
		case types.PAYMENT_METHOD_CREDIT_CARD:
			chargeID, err := lib.GetCardCharger().Charge(totalAmount, in.PaymentToken)
			if err != nil {
				return fmt.Errorf("Credit card payment failed: %s", err.Error())
			}
			paymentStatus = types.PAYMENT_COMPLETED
			reservationStatus = types.RESERVATION_CONFIRMED
			if err := tx.
				Model(&payment).
				Updates(map[string]any{
					"status":         paymentStatus,
					"transaction_id": chargeID,
				}).
				Error; err != nil {
				return err
			}
		case types.PAYMENT_METHOD_PAYPAL:
			paymentStatus = types.PAYMENT_PROCESSING
			reservationStatus = types.RESERVATION_AWAITING_PAYMENT
			if err := tx.Model(&payment).Update("status", paymentStatus).Error; err != nil {
				return err
			}
		case types.PAYMENT_METHOD_CASH:
			paymentStatus = types.PAYMENT_PENDING
			reservationStatus = types.RESERVATION_AWAITING_VERIFICATION
			if err := tx.Model(&payment).Update("status", paymentStatus).Error; err != nil {
				return err
			}
		default:
			return ErrUnsupportedPaymentMethod
		}

		if err := tx.
			Model(&models.Reservation{}).
			Where(&models.Reservation{ID: reservation.ID}).
			Update("status", reservationStatus).
			Error; err != nil {
			return err
		}

		if err := tx.
			Model(&models.Seat{}).
			Where("id IN ?", in.SeatIDs).
			Update("is_reserved", true).
			Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("Reservation update failed: %s", err.Error())
	}

	result := &UpdateReservationResult{
		Message:       "Reservation updated successfully",
		ReservationID: reservation.ID,
		PaymentStatus: paymentStatus,
		Seats:         seatNumbers,
		TotalAmount:   totalAmount,
	}

	if paymentStatus == types.PAYMENT_COMPLETED {
		sendReservationConfirmation(in.UserID, in.ShowtimeID, method, result)
		return result, http.StatusOK, nil
	}
	result.Message = "Payment processing required"
	return result, http.StatusAccepted, nil
}

// sendReservationConfirmation delivers the post-commit email. It is
// best-effort: the reservation is already committed, so failures are
// logged and swallowed.
func sendReservationConfirmation(userID, showtimeID uint, method types.PaymentMethod, result *UpdateReservationResult) {
	d := db.GetDb()
	var user models.User
	if err := d.First(&user, userID).Error; err != nil {
		log.Printf("Could not load user [%d] for confirmation email: %s\n", userID, err.Error())
		return
	}
	var showtime models.Showtime
	if err := d.Preload("Movie").First(&showtime, showtimeID).Error; err != nil {
		log.Printf("Could not load showtime [%d] for confirmation email: %s\n", showtimeID, err.Error())
		return
	}
	movieTitle := ""
	if showtime.Movie != nil {
		movieTitle = showtime.Movie.Title
	}
	content := fmt.Sprintf(
		"Hello %s,\n\nYour reservation for '%s' on %s has been updated.\nSeats: %s\nAmount paid: $%.2f\nPayment method: %s\n\nThank you for choosing our cinema!",
		user.Username,
		movieTitle,
		showtime.StartTime.Format("2006-01-02 15:04"),
		strings.Join(result.Seats, ", "),
		result.TotalAmount,
		method,
	)
	if _, err := mailer.GetMailer().Send(&lib.SendMailInput{
		To:      []string{user.Email},
		Subject: "Reservation Update Confirmation",
		Body:    content,
	}); err != nil {
		log.Printf("Could not send confirmation email to %s: %s\n", user.Email, err.Error())
	}
}

// CancelReservation releases the reservation's seats and removes the
// record. Only the owner may cancel, and only before the showtime has
// started.
func CancelReservation(userID, reservationID uint) (int, error) {
	d := db.GetDb()
	var reservation models.Reservation
	if err := d.
		Preload("Seats").
		Preload("Showtime").
		Where(&models.Reservation{ID: reservationID}).
		First(&reservation).
		Error; err != nil {
		return http.StatusNotFound, errors.New("Resource not found")
	}
	if reservation.UserID != userID {
		return http.StatusForbidden, errors.New("Unauthorized to cancel this reservation")
	}
	if reservation.Showtime != nil && time.Now().After(reservation.Showtime.StartTime) {
		return http.StatusBadRequest, errors.New("Cannot cancel past reservations")
	}

	err := d.Transaction(func(tx *gorm.DB) error {
		if len(reservation.Seats) > 0 {
			seatIDs := make([]uint, 0, len(reservation.Seats))
			for _, seat := range reservation.Seats {
				seatIDs = append(seatIDs, seat.ID)
			}
			if err := tx.
				Model(&models.Seat{}).
				Where("id IN ?", seatIDs).
				Update("is_reserved", false).
				Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&reservation).Association("Seats").Clear(); err != nil {
			return err
		}
		if err := tx.
			Where(&models.Payment{ReservationID: reservation.ID}).
			Delete(&models.Payment{}).
			Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Reservation{}, reservation.ID).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("Could not cancel reservation [%d]: %s\n", reservationID, err.Error())
		return http.StatusBadRequest, errors.New("Error while processing request")
	}
	return http.StatusOK, nil
}
