/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package server

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"banana-bank-go/internal/database"
	"banana-bank-go/internal/models"
	"banana-bank-go/internal/payments"
)

type PaymentHandler struct {
	Store *database.Service
}

func (h *PaymentHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true, "service": "banana-bank-backend"})
}

func (h *PaymentHandler) CreatePayment(c *fiber.Ctx) error {
	var params models.CreatePaymentParams
	if err := c.BodyParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	payment, err := h.Store.Create(c.Context(), params)
	if err != nil {
		if errors.Is(err, payments.ErrInvalidPayload) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
		}
		zap.L().Error("Failed to create payment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

func (h *PaymentHandler) GetPayment(c *fiber.Ctx) error {
	id, ok := parsePaymentId(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	payment, err := h.Store.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, payments.ErrPaymentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		zap.L().Error("Failed to fetch payment", zap.Int64("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(payment)
}

func (h *PaymentHandler) ConfirmPayment(c *fiber.Ctx) error {
	id, ok := parsePaymentId(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var body struct {
		Status models.PaymentStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || !models.ValidConfirmStatus(body.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid status"})
	}

	payment, err := h.Store.Confirm(c.Context(), id, body.Status)
	if err != nil {
		if errors.Is(err, payments.ErrPaymentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
		}
		zap.L().Error("Failed to confirm payment", zap.Int64("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.JSON(payment)
}

func parsePaymentId(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
