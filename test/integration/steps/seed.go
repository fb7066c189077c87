package steps

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/pgdesk/backend/internal/integration/persistence/model"
)

const defaultSeedPassword = "SecurePass123!"

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, defaultSeedPassword)
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password)
}

func (t *testContext) createUser(email, password string) error {
	if _, exists := t.userIDs[email]; exists {
		return nil
	}

	userID := uuid.New()
	t.userIDs[email] = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         "Test User " + email,
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs creates the user if needed and signs a token pair for them.
func (t *testContext) iAmLoggedInAs(email string) error {
	if err := t.createUser(email, defaultSeedPassword); err != nil {
		return err
	}
	t.currentUserID = t.userIDs[email]

	now := time.Now().UTC()

	accessToken, err := signTestToken(t.currentUserID, email, "access", now, 15*time.Minute)
	if err != nil {
		return err
	}
	t.accessToken = accessToken

	refreshToken, err := signTestToken(t.currentUserID, email, "refresh", now, 7*24*time.Hour)
	if err != nil {
		return err
	}
	t.refreshToken = refreshToken

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func signTestToken(userID uuid.UUID, email, tokenType string, now time.Time, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": tokenType,
		"exp":        jwt.NewNumericDate(now.Add(duration)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "pgdesk",
		"sub":        userID.String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	if err := t.createUser(email, defaultSeedPassword); err != nil {
		return err
	}

	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    t.userIDs[email],
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) aPropertyExistsOwnedBy(name, email string) error {
	if err := t.createUser(email, defaultSeedPassword); err != nil {
		return err
	}

	propertyID := uuid.New()
	t.propertyID = propertyID

	now := time.Now().UTC()
	property := &model.PropertyModel{
		ID:        propertyID,
		Name:      name,
		Address:   "12 Test Street",
		OwnerID:   t.userIDs[email],
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(property).Error
}

func (t *testContext) isAManagerOfTheProperty(email string) error {
	if err := t.createUser(email, defaultSeedPassword); err != nil {
		return err
	}
	t.managerUserID = t.userIDs[email]

	assignment := &model.PropertyManagerModel{
		ID:         uuid.New(),
		PropertyID: t.propertyID,
		ManagerID:  t.managerUserID,
		CreatedAt:  time.Now().UTC(),
	}

	return t.db.DbConn.Create(assignment).Error
}

func (t *testContext) aRoomExistsInTheProperty(roomNumber, roomType, rent string, capacity int) error {
	amount, err := decimal.NewFromString(rent)
	if err != nil {
		return fmt.Errorf("invalid rent '%s': %w", rent, err)
	}

	roomID := uuid.New()
	t.roomIDs[roomNumber] = roomID
	t.lastRoomID = roomID

	now := time.Now().UTC()
	room := &model.RoomModel{
		ID:            roomID,
		PropertyID:    t.propertyID,
		RoomNumber:    roomNumber,
		RoomType:      roomType,
		MonthlyRent:   amount,
		Status:        "vacant",
		MaxOccupancy:  capacity,
		CurrentGuests: 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return t.db.DbConn.Create(room).Error
}

func (t *testContext) aGuestIsCheckedInToRoom(name, roomNumber, rent, joining string) error {
	amount, err := decimal.NewFromString(rent)
	if err != nil {
		return fmt.Errorf("invalid rent '%s': %w", rent, err)
	}

	joiningDate, err := time.Parse("2006-01-02", joining)
	if err != nil {
		return fmt.Errorf("invalid joining date '%s': %w", joining, err)
	}

	roomID, ok := t.roomIDs[roomNumber]
	if !ok {
		return fmt.Errorf("room '%s' has not been created", roomNumber)
	}

	guestID := uuid.New()
	t.guestIDs[name] = guestID
	t.lastGuestID = guestID

	now := time.Now().UTC()
	guest := &model.GuestModel{
		ID:            guestID,
		PropertyID:    t.propertyID,
		RoomID:        &roomID,
		FullName:      name,
		Phone:         "9876543210",
		JoiningDate:   joiningDate,
		MonthlyRent:   amount,
		PaymentStatus: "pending",
		Status:        "active",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := t.db.DbConn.Create(guest).Error; err != nil {
		return err
	}

	// Keep the room occupancy counters consistent with the new guest.
	var room model.RoomModel
	if err := t.db.DbConn.First(&room, "id = ?", roomID).Error; err != nil {
		return err
	}
	room.CurrentGuests++
	if room.CurrentGuests >= room.MaxOccupancy {
		room.Status = "occupied"
	}
	room.UpdatedAt = now

	return t.db.DbConn.Save(&room).Error
}

func (t *testContext) theGuestHasMovedOut(name string) error {
	guestID, ok := t.guestIDs[name]
	if !ok {
		return fmt.Errorf("guest '%s' has not been created", name)
	}

	return t.db.DbConn.Model(&model.GuestModel{}).
		Where("id = ?", guestID).
		Updates(map[string]any{"status": "moved_out", "room_id": nil}).Error
}

func (t *testContext) theGuestIsLinkedToUser(name, email string) error {
	if err := t.createUser(email, defaultSeedPassword); err != nil {
		return err
	}

	guestID, ok := t.guestIDs[name]
	if !ok {
		return fmt.Errorf("guest '%s' has not been created", name)
	}

	userID := t.userIDs[email]
	return t.db.DbConn.Model(&model.GuestModel{}).
		Where("id = ?", guestID).
		Update("user_id", userID).Error
}

func (t *testContext) aPaymentExistsForGuest(amount, guestName, month string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	paymentMonth, err := time.Parse("2006-01", month)
	if err != nil {
		return fmt.Errorf("invalid month '%s': %w", month, err)
	}

	guestID, ok := t.guestIDs[guestName]
	if !ok {
		return fmt.Errorf("guest '%s' has not been created", guestName)
	}

	paymentID := uuid.New()
	t.paymentID = paymentID

	payment := &model.PaymentModel{
		ID:            paymentID,
		GuestID:       guestID,
		PropertyID:    t.propertyID,
		Amount:        value,
		PaymentDate:   paymentMonth.AddDate(0, 0, 4),
		PaymentMonth:  paymentMonth,
		PaymentMethod: "Cash",
		CreatedAt:     time.Now().UTC(),
	}

	return t.db.DbConn.Create(payment).Error
}

func (t *testContext) anExpenseExists(amount, expenseType, date string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	expenseDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}

	expenseID := uuid.New()
	t.expenseID = expenseID

	expense := &model.ExpenseModel{
		ID:          expenseID,
		PropertyID:  t.propertyID,
		OwnerID:     t.currentUserID,
		ExpenseType: expenseType,
		Amount:      value,
		ExpenseDate: expenseDate,
		CreatedAt:   time.Now().UTC(),
	}

	return t.db.DbConn.Create(expense).Error
}

func (t *testContext) anAnnouncementExistsForTheProperty(title string) error {
	announcement := &model.AnnouncementModel{
		ID:         uuid.New(),
		PropertyID: t.propertyID,
		Title:      title,
		Message:    "Details for " + title,
		CreatedAt:  time.Now().UTC(),
	}

	return t.db.DbConn.Create(announcement).Error
}

func (t *testContext) aHouseRuleExistsForTheProperty(title, category string) error {
	rule := &model.HouseRuleModel{
		ID:          uuid.New(),
		PropertyID:  t.propertyID,
		Category:    category,
		Title:       title,
		Description: "Details for " + title,
		CreatedAt:   time.Now().UTC(),
	}

	return t.db.DbConn.Create(rule).Error
}

func (t *testContext) aMaintenanceRequestExistsForGuest(title, guestName string) error {
	guestID, ok := t.guestIDs[guestName]
	if !ok {
		return fmt.Errorf("guest '%s' has not been created", guestName)
	}

	now := time.Now().UTC()
	request := &model.MaintenanceRequestModel{
		ID:          uuid.New(),
		GuestID:     guestID,
		PropertyID:  t.propertyID,
		Title:       title,
		Description: "Details for " + title,
		Priority:    "medium",
		Status:      "pending",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(request).Error
}
