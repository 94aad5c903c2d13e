package controllers

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"roadready/config"
	"roadready/dto"
	"roadready/models"
	"roadready/response"
	"roadready/services"
	"roadready/validator"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const vehicleCacheTTL = 5 * time.Minute

type VehicleController struct {
	service services.VehicleServiceInterface
	reviews services.ReviewServiceInterface
	rdb     *redis.Client
}

func NewVehicleController(service services.VehicleServiceInterface, reviews services.ReviewServiceInterface, rdb *redis.Client) *VehicleController {
	return &VehicleController{service: service, reviews: reviews, rdb: rdb}
}

func (ctl *VehicleController) toResponse(ctx context.Context, vehicle *models.Vehicle) dto.VehicleResponse {
	resp := dto.VehicleResponse{
		ID:            vehicle.ID,
		Make:          vehicle.Make,
		Model:         vehicle.Model,
		Year:          vehicle.Year,
		DailyRate:     vehicle.DailyRate,
		Specification: vehicle.Specification,
		ImageURL:      vehicle.ImageURL,
		Available:     vehicle.IsListedAvailable(),
	}
	if ctl.reviews != nil {
		if avg, err := ctl.reviews.AverageRating(ctx, vehicle.ID); err == nil {
			resp.AverageRating = avg
		}
	}
	return resp
}

// invalidateCache xóa cache danh sách xe sau khi dữ liệu thay đổi
func (ctl *VehicleController) invalidateCache() {
	if ctl.rdb == nil {
		return
	}
	if err := services.DeleteByPattern(config.Ctx, ctl.rdb, "vehicles:*"); err != nil {
		fmt.Println("Không thể xóa cache danh sách xe:", err)
	}
}

// GetVehicles trả về danh sách xe có phân trang, đọc từ cache Redis khi
// có thể
func (ctl *VehicleController) GetVehicles(c *gin.Context) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	cacheKey := fmt.Sprintf("vehicles:all:%d:%d", page, limit)

	var vehicleResponses []dto.VehicleResponse
	if ctl.rdb != nil {
		if err := services.GetFromRedis(config.Ctx, ctl.rdb, cacheKey, &vehicleResponses); err == nil && len(vehicleResponses) > 0 {
			response.SuccessWithTotal(c, vehicleResponses, len(vehicleResponses))
			return
		}
	}

	vehicles, err := ctl.service.GetAll(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	total := len(vehicles)
	start := page * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	vehicleResponses = make([]dto.VehicleResponse, 0, end-start)
	for _, v := range vehicles[start:end] {
		vehicleResponses = append(vehicleResponses, ctl.toResponse(c.Request.Context(), v))
	}

	if ctl.rdb != nil {
		if err := services.SetToRedis(config.Ctx, ctl.rdb, cacheKey, vehicleResponses, vehicleCacheTTL); err != nil {
			fmt.Println("Không thể ghi cache danh sách xe:", err)
		}
	}

	response.SuccessWithPagination(c, vehicleResponses, page, limit, total)
}

// GetVehicleDetail trả về chi tiết một xe
func (ctl *VehicleController) GetVehicleDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	vehicle, err := ctl.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, ctl.toResponse(c.Request.Context(), vehicle))
}

// CreateVehicle thêm xe mới vào danh mục
func (ctl *VehicleController) CreateVehicle(c *gin.Context) {
	var request dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	vehicle := &models.Vehicle{
		Make:          request.Make,
		Model:         request.Model,
		Year:          request.Year,
		DailyRate:     request.DailyRate,
		Specification: request.Specification,
		Availability:  request.Availability,
	}
	if err := validator.ValidateVehicle(vehicle); err != nil {
		response.FromDomainError(c, err)
		return
	}

	created, err := ctl.service.Create(c.Request.Context(), vehicle)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	ctl.invalidateCache()
	response.Success(c, ctl.toResponse(c.Request.Context(), created))
}

// UpdateVehicle cập nhật thông tin xe
func (ctl *VehicleController) UpdateVehicle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	vehicle, err := ctl.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	if request.Make != "" {
		vehicle.Make = request.Make
	}
	if request.Model != "" {
		vehicle.Model = request.Model
	}
	if request.Year != 0 {
		vehicle.Year = request.Year
	}
	if request.DailyRate != nil {
		vehicle.DailyRate = *request.DailyRate
	}
	if request.Specification != "" {
		vehicle.Specification = request.Specification
	}
	if request.Availability != nil {
		vehicle.Availability = request.Availability
	}
	if err := validator.ValidateVehicle(vehicle); err != nil {
		response.FromDomainError(c, err)
		return
	}

	updated, err := ctl.service.Update(c.Request.Context(), vehicle)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	ctl.invalidateCache()
	response.Success(c, ctl.toResponse(c.Request.Context(), updated))
}

// DeleteVehicle xóa xe khỏi danh mục
func (ctl *VehicleController) DeleteVehicle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := ctl.service.Delete(c.Request.Context(), uint(id)); err != nil {
		response.FromDomainError(c, err)
		return
	}

	ctl.invalidateCache()
	response.Success(c, nil)
}

// ChangeVehicleAvailability bật / tắt cờ cho thuê của xe
func (ctl *VehicleController) ChangeVehicleAvailability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	vehicle, err := ctl.service.SetAvailability(c.Request.Context(), uint(id), request.Available)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	ctl.invalidateCache()
	response.Success(c, ctl.toResponse(c.Request.Context(), vehicle))
}

// ChangeDailyRate đổi giá thuê theo ngày của xe
func (ctl *VehicleController) ChangeDailyRate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.SetDailyRateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	vehicle, err := ctl.service.SetDailyRate(c.Request.Context(), uint(id), request.DailyRate)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	ctl.invalidateCache()
	response.Success(c, ctl.toResponse(c.Request.Context(), vehicle))
}

// ChangeSpecification đổi mô tả thông số của xe
func (ctl *VehicleController) ChangeSpecification(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var request dto.SetSpecificationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	vehicle, err := ctl.service.SetSpecification(c.Request.Context(), uint(id), request.Specification)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	ctl.invalidateCache()
	response.Success(c, ctl.toResponse(c.Request.Context(), vehicle))
}

// GetAvailableVehicles trả về các xe còn trống. Có pickUpDateTime và
// dropOffDateTime thì lọc theo khoảng ngày, không có thì lọc theo cờ
// cho thuê.
func (ctl *VehicleController) GetAvailableVehicles(c *gin.Context) {
	pickUpStr := c.Query("pickUpDateTime")
	dropOffStr := c.Query("dropOffDateTime")

	var vehicles []*models.Vehicle
	var err error
	if pickUpStr != "" && dropOffStr != "" {
		pickUp, perr := parseDateTime(pickUpStr)
		if perr != nil {
			response.BadRequest(c, "Định dạng ngày nhận xe không hợp lệ")
			return
		}
		dropOff, perr := parseDateTime(dropOffStr)
		if perr != nil {
			response.BadRequest(c, "Định dạng ngày trả xe không hợp lệ")
			return
		}
		vehicles, err = ctl.service.ListAvailableForInterval(c.Request.Context(), pickUp, dropOff)
	} else {
		vehicles, err = ctl.service.ListAvailable(c.Request.Context())
	}
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	vehicleResponses := make([]dto.VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		vehicleResponses = append(vehicleResponses, ctl.toResponse(c.Request.Context(), v))
	}
	response.SuccessWithTotal(c, vehicleResponses, len(vehicleResponses))
}

// GetVehicleAvailability trả về cờ cho thuê và các khoảng ngày đã kín
// của một xe
func (ctl *VehicleController) GetVehicleAvailability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	availability, err := ctl.service.ViewAvailability(c.Request.Context(), uint(id))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}
	response.Success(c, availability)
}

// normalizeInput bỏ dấu và chuyển về chữ thường để so khớp mờ
func normalizeInput(input string) string {
	return strings.ToLower(unidecode.Unidecode(input))
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(distance)/float64(maxLen)
}

func vehicleKeywords(vehicles []*models.Vehicle) []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		for _, k := range []string{normalizeInput(v.Make), normalizeInput(v.Model)} {
			if k != "" && !seen[k] {
				seen[k] = true
				keywords = append(keywords, k)
			}
		}
	}
	return keywords
}

func scoreVehicle(query string, vehicle *models.Vehicle, cm *closestmatch.ClosestMatch) float64 {
	makeName := normalizeInput(vehicle.Make)
	model := normalizeInput(vehicle.Model)
	full := makeName + " " + model

	if strings.Contains(full, query) {
		return 1
	}

	score := calculateSimilarity(query, makeName)
	if s := calculateSimilarity(query, model); s > score {
		score = s
	}
	if closest := cm.Closest(query); closest != "" {
		if s := calculateSimilarity(closest, makeName) * calculateSimilarity(query, closest); s > score {
			score = s
		}
		if s := calculateSimilarity(closest, model) * calculateSimilarity(query, closest); s > score {
			score = s
		}
	}
	return score
}

// SearchVehicles tìm xe theo từ khóa, chịu được sai chính tả nhẹ
func (ctl *VehicleController) SearchVehicles(c *gin.Context) {
	query := normalizeInput(c.Query("q"))
	if query == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}

	vehicles, err := ctl.service.GetAll(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	cm := createMatcher(vehicleKeywords(vehicles))

	type scored struct {
		vehicle *models.Vehicle
		score   float64
	}
	matches := make([]scored, 0, len(vehicles))
	for _, v := range vehicles {
		if score := scoreVehicle(query, v, cm); score >= 0.5 {
			matches = append(matches, scored{vehicle: v, score: score})
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	vehicleResponses := make([]dto.VehicleResponse, 0, len(matches))
	for _, m := range matches {
		vehicleResponses = append(vehicleResponses, ctl.toResponse(c.Request.Context(), m.vehicle))
	}
	response.SuccessWithTotal(c, vehicleResponses, len(vehicleResponses))
}

// UploadVehicleImage upload ảnh xe lên Cloudinary và lưu URL vào xe
func (ctl *VehicleController) UploadVehicleImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	vehicle, err := ctl.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Lỗi khi mở file")
		return
	}
	defer src.Close()

	ctx := context.Background()
	resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "vehicles"})
	if err != nil {
		response.ServerError(c)
		return
	}

	vehicle.ImageURL = resp.SecureURL
	updated, err := ctl.service.Update(c.Request.Context(), vehicle)
	if err != nil {
		response.FromDomainError(c, err)
		return
	}

	ctl.invalidateCache()
	response.Success(c, ctl.toResponse(c.Request.Context(), updated))
}
