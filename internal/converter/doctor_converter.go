package converter

import (
	"hospital-management-backend/internal/delivery/dto"
	"hospital-management-backend/internal/scheduling"
)

// AvailabilityToResponses converts annotated doctors to DTOs, keeping
// the projection order.
func AvailabilityToResponses(annotated []scheduling.DoctorAvailability) []dto.DoctorAvailabilityResponse {
	responses := make([]dto.DoctorAvailabilityResponse, len(annotated))
	for i, a := range annotated {
		responses[i] = dto.DoctorAvailabilityResponse{
			ID:                     a.ID,
			FullName:               a.FullName,
			Specialty:              a.Specialty,
			DailyCapacity:          a.DailyCapacity,
			ConsultationFee:        a.ConsultationFee,
			TodaysAppointmentCount: a.TodaysAppointmentCount,
			IsAvailable:            a.IsAvailable,
			Unbounded:              a.Unbounded,
			RemainingSlots:         a.RemainingSlots,
		}
	}
	return responses
}

// QueueToResponses converts a day queue to DTOs, keeping queue order.
func QueueToResponses(entries []scheduling.QueueEntry) []dto.DoctorQueueEntryResponse {
	responses := make([]dto.DoctorQueueEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = dto.DoctorQueueEntryResponse{
			PatientID:           e.Patient.ID,
			PatientName:         e.Patient.FullName,
			MedicalRecordNumber: e.Patient.MedicalRecordNumber,
			SequenceNumber:      e.Appointment.SequenceNumber,
			Status:              string(e.Appointment.Status),
			Fee:                 e.Appointment.Fee,
		}
	}
	return responses
}
