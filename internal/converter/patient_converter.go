package converter

import (
	"hospital-management-backend/internal/delivery/dto"
	"hospital-management-backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:                  patient.ID,
		MedicalRecordNumber: patient.MedicalRecordNumber,
		FullName:            patient.FullName,
		PhoneNumber:         patient.PhoneNumber,
		DateOfBirth:         patient.DateOfBirth.Format(dateLayout),
		Gender:              patient.Gender,
		Address:             patient.Address,
		Appointment:         AppointmentToResponse(patient),
		CreatedAt:           patient.CreatedAt,
		UpdatedAt:           patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// AppointmentToResponse converts the embedded appointment of a patient,
// returning nil when the patient holds no booking.
func AppointmentToResponse(patient *entity.Patient) *dto.AppointmentResponse {
	if patient == nil || !patient.HasAppointment() {
		return nil
	}

	appt := patient.Appointment
	return &dto.AppointmentResponse{
		DoctorID:       appt.DoctorID,
		DoctorName:     appt.DoctorName,
		Fee:            appt.Fee,
		Date:           appt.Date.Format(dateLayout),
		SequenceNumber: appt.SequenceNumber,
		Status:         string(appt.Status),
		BookedAt:       appt.BookedAt,
	}
}
