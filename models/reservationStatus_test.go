package models

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{"pending sang reserved", ReservationStatusPending, ReservationStatusReserved, true},
		{"pending sang confirmed", ReservationStatusPending, ReservationStatusConfirmed, true},
		{"pending sang cancelled", ReservationStatusPending, ReservationStatusCancelled, true},
		{"reserved sang confirmed", ReservationStatusReserved, ReservationStatusConfirmed, true},
		{"reserved sang cancelled", ReservationStatusReserved, ReservationStatusCancelled, true},
		{"confirmed sang cancelled", ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{"reserved về pending", ReservationStatusReserved, ReservationStatusPending, false},
		{"confirmed về reserved", ReservationStatusConfirmed, ReservationStatusReserved, false},
		{"cancelled về pending", ReservationStatusCancelled, ReservationStatusPending, false},
		{"cancelled về confirmed", ReservationStatusCancelled, ReservationStatusConfirmed, false},
		{"cancelled sang cancelled", ReservationStatusCancelled, ReservationStatusCancelled, true},
		{"pending sang pending", ReservationStatusPending, ReservationStatusPending, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, muốn %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestParseReservationStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Reserved", "Confirmed", "Cancelled"} {
		if _, err := ParseReservationStatus(valid); err != nil {
			t.Errorf("ParseReservationStatus(%q) trả lỗi: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "pending", "Done", "CANCELLED"} {
		if _, err := ParseReservationStatus(invalid); err == nil {
			t.Errorf("ParseReservationStatus(%q) phải trả lỗi", invalid)
		}
	}
}

func TestStatusBlocks(t *testing.T) {
	for _, s := range []ReservationStatus{ReservationStatusPending, ReservationStatusReserved, ReservationStatusConfirmed} {
		if !s.Blocks() {
			t.Errorf("%s phải giữ chỗ trên lịch xe", s)
		}
	}
	if ReservationStatusCancelled.Blocks() {
		t.Error("Cancelled không được giữ chỗ trên lịch xe")
	}
}
